package characters

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/clock"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

const (
	characterKeyPrefix = "character:"
	ownerIndexPrefix   = "character:owner:"
	allIndexKey        = "character:all"
	archivedIndexKey   = "character:archived"

	// Profiles live in the same store; the admin join reads them
	// directly.
	profileKeyPrefix = "profile:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errOwnerIDEmpty     = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Character.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now()
	character := *input.Character
	character.Active = true
	character.CreatedAt = now
	character.UpdatedAt = now

	data, err := json.Marshal(&character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // rows have no TTL
	pipe.SAdd(ctx, ownerIndexPrefix+character.OwnerID, character.ID)
	pipe.SAdd(ctx, allIndexKey, character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: &character}, nil
}

// loadRow fetches a character row without any scoping.
func (r *redisRepository) loadRow(ctx context.Context, id string) (*entities.Character, error) {
	result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}

	var character entities.Character
	if err := json.Unmarshal([]byte(result), &character); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", id)
	}
	return &character, nil
}

// getScoped fetches an active character row filtered by owner. A row that
// is archived or owned by someone else reads as NotFound.
func (r *redisRepository) getScoped(ctx context.Context, id, ownerID string) (*entities.Character, error) {
	character, err := r.loadRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if !character.Active || character.OwnerID != ownerID {
		return nil, errors.NotFoundf("character with ID %s not found", id)
	}
	return character, nil
}

func (r *redisRepository) saveRow(ctx context.Context, character *entities.Character) error {
	data, err := json.Marshal(character)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal character %s", character.ID)
	}
	if err := r.client.Set(ctx, characterKeyPrefix+character.ID, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save character %s", character.ID)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	character, err := r.getScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: character}, nil
}

func (r *redisRepository) GetAsAdmin(ctx context.Context, input GetAsAdminInput) (*GetAsAdminOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character, err := r.loadRow(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !character.Active {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &GetAsAdminOutput{
		Character: &entities.AdminCharacter{
			Character: character,
			Owner:     r.ownerInfo(ctx, character.OwnerID),
		},
	}, nil
}

// ownerInfo reads the owner's profile for display annotation. A missing or
// unreadable profile yields nil owner info, never an error.
func (r *redisRepository) ownerInfo(ctx context.Context, ownerID string) *entities.OwnerInfo {
	result, err := r.client.Get(ctx, profileKeyPrefix+ownerID).Result()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "failed to read owner profile",
				"owner_id", ownerID,
				"error", err.Error())
		}
		return nil
	}

	var profile entities.Profile
	if err := json.Unmarshal([]byte(result), &profile); err != nil {
		slog.WarnContext(ctx, "failed to unmarshal owner profile",
			"owner_id", ownerID,
			"error", err.Error())
		return nil
	}
	return &entities.OwnerInfo{UserID: profile.UserID, DisplayName: profile.DisplayName}
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	existing, err := r.getScoped(ctx, input.Character.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	// Identity and lifecycle fields always come from the stored row; a
	// full-row update cannot reassign or resurrect a character.
	updated := *input.Character
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.Active = existing.Active
	updated.CreatedAt = existing.CreatedAt
	updated.ArchivedAt = existing.ArchivedAt
	updated.RestoredAt = existing.RestoredAt
	updated.UpdatedAt = r.clock.Now()

	if err := r.saveRow(ctx, &updated); err != nil {
		return nil, err
	}
	return &UpdateOutput{Character: &updated}, nil
}

func (r *redisRepository) UpdateSubclassChoice(
	ctx context.Context,
	input UpdateSubclassChoiceInput,
) (*UpdateSubclassChoiceOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	character, err := r.getScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	character.Subclass = input.Subclass
	if input.Choices != nil {
		character.SubclassChoices = input.Choices
	}
	character.UpdatedAt = r.clock.Now()

	if err := r.saveRow(ctx, character); err != nil {
		return nil, err
	}
	return &UpdateSubclassChoiceOutput{Character: character}, nil
}

func (r *redisRepository) Archive(ctx context.Context, input ArchiveInput) (*ArchiveOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	// Scoped to currently-active rows: archiving twice reads as
	// NotFound rather than corrupting state.
	character, err := r.getScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	character.Active = false
	character.ArchivedAt = &now
	character.UpdatedAt = now

	data, err := json.Marshal(character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character %s", character.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+character.ID, data, 0)
	pipe.SRem(ctx, ownerIndexPrefix+character.OwnerID, character.ID)
	pipe.SRem(ctx, allIndexKey, character.ID)
	pipe.ZAdd(ctx, archivedIndexKey, redis.Z{Score: float64(now.Unix()), Member: character.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to archive character")
	}

	slog.InfoContext(ctx, "archived character",
		"character_id", character.ID,
		"owner_id", character.OwnerID)

	return &ArchiveOutput{Character: character}, nil
}

func (r *redisRepository) Restore(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	character, err := r.loadRow(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	// Scoped to currently-inactive rows only.
	if character.OwnerID != input.OwnerID || character.Active {
		return nil, errors.NotFoundf("archived character with ID %s not found", input.ID)
	}

	now := r.clock.Now()
	character.Active = true
	character.ArchivedAt = nil
	character.RestoredAt = &now
	character.UpdatedAt = now

	data, err := json.Marshal(character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character %s", character.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+character.ID, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+character.OwnerID, character.ID)
	pipe.SAdd(ctx, allIndexKey, character.ID)
	pipe.ZRem(ctx, archivedIndexKey, character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to restore character")
	}

	slog.InfoContext(ctx, "restored character",
		"character_id", character.ID,
		"owner_id", character.OwnerID)

	return &RestoreOutput{Character: character}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read owner index %s", indexKey)
	}
	sort.Strings(ids)

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		character, err := r.loadRow(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Self-heal a dangling index entry.
				slog.WarnContext(ctx, "character missing, cleaning up owner index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		if !character.Active {
			continue
		}
		characters = append(characters, character)
	}

	return &ListByOwnerOutput{Characters: characters}, nil
}

func (r *redisRepository) ListArchived(ctx context.Context, input ListArchivedInput) (*ListArchivedOutput, error) {
	// Newest-archived first: the archived index is scored by archive
	// time.
	ids, err := r.client.ZRevRange(ctx, archivedIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read archived index")
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		character, err := r.loadRow(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "archived character missing, cleaning up index",
					"character_id", id)
				r.client.ZRem(ctx, archivedIndexKey, id)
				continue
			}
			return nil, err
		}
		if character.Active {
			continue
		}
		if input.OwnerID != "" && character.OwnerID != input.OwnerID {
			continue
		}
		characters = append(characters, character)
	}

	return &ListArchivedOutput{Characters: characters}, nil
}

func (r *redisRepository) AdvanceSchoolYear(
	ctx context.Context,
	input AdvanceSchoolYearInput,
) (*AdvanceSchoolYearOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRange("newYear", input.NewYear, rulebook.MinSchoolYear, rulebook.MaxSchoolYear, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	levelIncrease := input.LevelIncrease
	if levelIncrease == 0 {
		levelIncrease = 1
	}
	if levelIncrease < 0 {
		return nil, errors.InvalidArgument("level increase cannot be negative")
	}

	character, err := r.getScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	previousLevel := character.Level
	newLevel := previousLevel + levelIncrease
	if newLevel > rulebook.MaxLevel {
		newLevel = rulebook.MaxLevel
	}

	// Year, level, and hit points land in one row write: they change
	// together or not at all.
	character.SchoolYear = input.NewYear
	character.Level = newLevel
	if input.HPIncrease > 0 {
		character.MaxHitPoints += input.HPIncrease
		character.CurrentHitPoints += input.HPIncrease
	}
	character.UpdatedAt = r.clock.Now()

	if err := r.saveRow(ctx, character); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "advanced school year",
		"character_id", character.ID,
		"school_year", character.SchoolYear,
		"level", character.Level)

	return &AdvanceSchoolYearOutput{
		Character:     character,
		PreviousLevel: previousLevel,
	}, nil
}
