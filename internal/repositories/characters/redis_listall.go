package characters

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
)

// Strategy names reported in ListAllOutput.Strategy.
const (
	StrategyPipelinedJoin = "pipelined-join"
	StrategyPerRowJoin    = "per-row-join"
	StrategyBareRows      = "bare-rows"
)

type listAllStrategy struct {
	name string
	run  func(ctx context.Context, ids []string) ([]*entities.AdminCharacter, error)
}

// ListAll walks a degrading chain of join strategies. The fast path reads
// rows and owner profiles in two pipelines; if that fails the per-row path
// retries with individual reads; the last resort returns bare rows with
// nil owner info so the admin listing stays usable when profile reads are
// broken.
func (r *redisRepository) ListAll(ctx context.Context, _ ListAllInput) (*ListAllOutput, error) {
	ids, err := r.client.SMembers(ctx, allIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index")
	}
	sort.Strings(ids)

	strategies := []listAllStrategy{
		{name: StrategyPipelinedJoin, run: r.listAllPipelined},
		{name: StrategyPerRowJoin, run: r.listAllPerRow},
		{name: StrategyBareRows, run: r.listAllBare},
	}

	var lastErr error
	for i, strategy := range strategies {
		characters, err := strategy.run(ctx, ids)
		if err != nil {
			lastErr = err
			if i+1 < len(strategies) {
				slog.WarnContext(ctx, "list-all strategy failed, falling back",
					"strategy", strategy.name,
					"next", strategies[i+1].name,
					"error", err.Error())
			}
			continue
		}
		if strategy.name != StrategyPipelinedJoin {
			slog.InfoContext(ctx, "list-all served by fallback strategy",
				"strategy", strategy.name,
				"count", len(characters))
		}
		return &ListAllOutput{Characters: characters, Strategy: strategy.name}, nil
	}

	return nil, errors.Wrapf(lastErr, "all list-all strategies failed")
}

// listAllPipelined reads every row in one pipeline, then every distinct
// owner profile in a second.
func (r *redisRepository) listAllPipelined(ctx context.Context, ids []string) ([]*entities.AdminCharacter, error) {
	rows, err := r.fetchRowsPipelined(ctx, ids)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.OwnerID] {
			seen[row.OwnerID] = true
			ownerIDs = append(ownerIDs, row.OwnerID)
		}
	}

	owners, err := r.fetchOwnersPipelined(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	characters := make([]*entities.AdminCharacter, 0, len(rows))
	for _, row := range rows {
		characters = append(characters, &entities.AdminCharacter{
			Character: row,
			Owner:     owners[row.OwnerID],
		})
	}
	return characters, nil
}

func (r *redisRepository) fetchRowsPipelined(ctx context.Context, ids []string) ([]*entities.Character, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, characterKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to pipeline character rows")
	}

	rows := make([]*entities.Character, 0, len(ids))
	for i, cmd := range cmds {
		result, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Dangling index entry, self-heal.
				slog.WarnContext(ctx, "character missing, cleaning up index",
					"character_id", ids[i])
				r.client.SRem(ctx, allIndexKey, ids[i])
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", ids[i])
		}

		var character entities.Character
		if err := json.Unmarshal([]byte(result), &character); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", ids[i])
		}
		if !character.Active {
			continue
		}
		rows = append(rows, &character)
	}
	return rows, nil
}

func (r *redisRepository) fetchOwnersPipelined(
	ctx context.Context,
	ownerIDs []string,
) (map[string]*entities.OwnerInfo, error) {
	owners := make(map[string]*entities.OwnerInfo, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return owners, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ownerIDs))
	for i, ownerID := range ownerIDs {
		cmds[i] = pipe.Get(ctx, profileKeyPrefix+ownerID)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to pipeline owner profiles")
	}

	for i, cmd := range cmds {
		result, err := cmd.Result()
		if err != nil {
			// A missing profile annotates as nil owner; a transport
			// error fails the strategy.
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get profile %s", ownerIDs[i])
		}

		var profile entities.Profile
		if err := json.Unmarshal([]byte(result), &profile); err != nil {
			slog.WarnContext(ctx, "failed to unmarshal owner profile",
				"owner_id", ownerIDs[i],
				"error", err.Error())
			continue
		}
		owners[ownerIDs[i]] = &entities.OwnerInfo{
			UserID:      profile.UserID,
			DisplayName: profile.DisplayName,
		}
	}
	return owners, nil
}

// listAllPerRow reads each row and its owner profile individually. Slower
// than the pipelined join, but a single poisoned command cannot sink the
// whole batch.
func (r *redisRepository) listAllPerRow(ctx context.Context, ids []string) ([]*entities.AdminCharacter, error) {
	characters := make([]*entities.AdminCharacter, 0, len(ids))
	for _, id := range ids {
		character, err := r.loadRow(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, allIndexKey, id)
				continue
			}
			return nil, err
		}
		if !character.Active {
			continue
		}
		owner, err := r.ownerInfoStrict(ctx, character.OwnerID)
		if err != nil {
			return nil, err
		}
		characters = append(characters, &entities.AdminCharacter{
			Character: character,
			Owner:     owner,
		})
	}
	return characters, nil
}

// ownerInfoStrict reads an owner profile for the per-row join. A missing
// or malformed profile annotates as nil; a transport error fails the
// strategy so the chain can degrade to bare rows.
func (r *redisRepository) ownerInfoStrict(ctx context.Context, ownerID string) (*entities.OwnerInfo, error) {
	result, err := r.client.Get(ctx, profileKeyPrefix+ownerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get profile %s", ownerID)
	}

	var profile entities.Profile
	if err := json.Unmarshal([]byte(result), &profile); err != nil {
		slog.WarnContext(ctx, "failed to unmarshal owner profile",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, nil
	}
	return &entities.OwnerInfo{UserID: profile.UserID, DisplayName: profile.DisplayName}, nil
}

// listAllBare returns rows without owner annotation.
func (r *redisRepository) listAllBare(ctx context.Context, ids []string) ([]*entities.AdminCharacter, error) {
	characters := make([]*entities.AdminCharacter, 0, len(ids))
	for _, id := range ids {
		character, err := r.loadRow(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if !character.Active {
			continue
		}
		characters = append(characters, &entities.AdminCharacter{Character: character})
	}
	return characters, nil
}
