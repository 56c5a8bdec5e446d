package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/wizarding-rpg/character-api/internal/config"
	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/orchestrators/character"
	"github.com/wizarding-rpg/character-api/internal/orchestrators/dice"
	"github.com/wizarding-rpg/character-api/internal/pkg/idgen"
	redisclient "github.com/wizarding-rpg/character-api/internal/redis"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
	"github.com/wizarding-rpg/character-api/internal/repositories/inventory"
	"github.com/wizarding-rpg/character-api/internal/repositories/profiles"
	"github.com/wizarding-rpg/character-api/internal/repositories/resources"
	"github.com/wizarding-rpg/character-api/internal/repositories/spells"
	"github.com/wizarding-rpg/character-api/internal/repositories/vault"
)

var (
	ownerID     string
	adminSecret string
)

// services bundles everything a subcommand needs after wiring.
type services struct {
	characters character.Service
	dice       dice.Service
	authorizer *profiles.Authorizer
}

// wire loads configuration and builds the full dependency graph. Every
// subcommand goes through here so they all see the same stack.
func wire() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password:        cfg.RedisPassword,
		DB:              cfg.RedisDB,
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	characterRepo, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	resourceRepo, err := resources.NewRedis(&resources.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create resource repository: %w", err)
	}
	inventoryRepo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}
	spellRepo, err := spells.NewRedis(&spells.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create spell repository: %w", err)
	}
	vaultRepo, err := vault.NewRedis(&vault.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create vault repository: %w", err)
	}
	profileRepo, err := profiles.NewRedis(&profiles.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	authorizer, err := profiles.NewAuthorizer(&profiles.AuthorizerConfig{
		Repository:  profileRepo,
		AdminSecret: cfg.AdminSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer: %w", err)
	}

	characterSvc, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: characterRepo,
		ResourceRepo:  resourceRepo,
		InventoryRepo: inventoryRepo,
		SpellRepo:     spellRepo,
		VaultRepo:     vaultRepo,
		Authorizer:    authorizer,
		IDGenerator:   idgen.NewUUID("char"),
		Roller:        dice.ToolkitRoller{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	diceSvc, err := dice.NewOrchestrator(&dice.Config{
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	return &services{
		characters: characterSvc,
		dice:       diceSvc,
		authorizer: authorizer,
	}, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List an owner's active characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.characters.ListCharacters(cmd.Context(), &character.ListCharactersInput{
			OwnerID: ownerID,
		})
		if err != nil {
			return err
		}

		for _, c := range out.Characters {
			fmt.Printf("%s  %-24s  level %-2d  year %d  %s\n",
				c.Character.ID, c.Character.Name, c.Character.Level,
				c.Character.SchoolYear, c.Character.CastingStyle)
		}
		log.Printf("%d character(s)", len(out.Characters))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Show a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.characters.GetCharacter(cmd.Context(), &character.GetCharacterInput{
			ID:      args[0],
			OwnerID: ownerID,
		})
		if err != nil {
			return err
		}

		c := out.Character
		fmt.Printf("%s (%s)\n", c.Name, c.ID)
		fmt.Printf("  level %d, school year %d, %s, house %s\n",
			c.Level, c.SchoolYear, c.CastingStyle, c.House)
		fmt.Printf("  HP %d/%d\n", c.CurrentHitPoints, c.MaxHitPoints)
		fmt.Printf("  sorcery points %d/%d\n",
			out.Resources.SorceryPoints.Current, out.Resources.SorceryPoints.Max)
		for level := 1; level <= entities.SpellSlotTiers; level++ {
			slot := out.Resources.Slot(level)
			if slot.Max == 0 {
				continue
			}
			fmt.Printf("  level %d slots %d/%d\n", level, slot.Current, slot.Max)
		}
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive <character-id>",
	Short: "Archive a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.characters.ArchiveCharacter(cmd.Context(), &character.ArchiveCharacterInput{
			ID:      args[0],
			OwnerID: ownerID,
		})
		if err != nil {
			return err
		}
		log.Printf("archived %s (%s)", out.Character.Name, out.Character.ID)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <character-id>",
	Short: "Restore an archived character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.characters.RestoreCharacter(cmd.Context(), &character.RestoreCharacterInput{
			ID:      args[0],
			OwnerID: ownerID,
		})
		if err != nil {
			return err
		}
		log.Printf("restored %s (%s)", out.Character.Name, out.Character.ID)
		return nil
	},
}

var archivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List archived characters, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.characters.ListArchivedCharacters(cmd.Context(), &character.ListArchivedCharactersInput{
			OwnerID: ownerID,
		})
		if err != nil {
			return err
		}

		for _, c := range out.Characters {
			archivedAt := "unknown"
			if c.ArchivedAt != nil {
				archivedAt = c.ArchivedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("%s  %-24s  owner %s  archived %s\n", c.ID, c.Name, c.OwnerID, archivedAt)
		}
		log.Printf("%d archived character(s)", len(out.Characters))
		return nil
	},
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <user-id>",
	Short: "Grant the admin role to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		profile, err := svc.authorizer.GrantAdmin(cmd.Context(), args[0], adminSecret)
		if err != nil {
			return err
		}
		log.Printf("granted admin to %s", profile.UserID)
		return nil
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll dice from notation like 2d6 or 1d20+3",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := wire()
		if err != nil {
			return err
		}

		out, err := svc.dice.Roll(cmd.Context(), &dice.RollInput{Notation: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("%s = %d  (dice %v, modifier %+d)\n",
			out.Notation, out.Total, out.Dice, out.Modifier)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, showCmd, archiveCmd, restoreCmd, archivedCmd} {
		cmd.Flags().StringVar(&ownerID, "owner", "", "owner (user) ID for scoping")
	}
	for _, cmd := range []*cobra.Command{listCmd, showCmd, archiveCmd, restoreCmd} {
		_ = cmd.MarkFlagRequired("owner")
	}
	grantAdminCmd.Flags().StringVar(&adminSecret, "secret", "", "bootstrap admin secret")
	_ = grantAdminCmd.MarkFlagRequired("secret")
}
