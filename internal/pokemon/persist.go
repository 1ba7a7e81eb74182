package pokemon

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pokedex/pkg/models"
)

// SaveToDatabase upserts records into the `pokemon` table created by
// database.Migrate. Sprites are stored as JSON text.
func SaveToDatabase(ctx context.Context, db *sql.DB, records []models.Pokemon) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pokemon (
		  id, position, name, type1, type2, hp, attack, defense, sp_atk, sp_def, speed,
		  generation, legendary, height, weight, base_experience, sprites
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  position = excluded.position,
		  name = excluded.name,
		  type1 = excluded.type1,
		  type2 = excluded.type2,
		  hp = excluded.hp,
		  attack = excluded.attack,
		  defense = excluded.defense,
		  sp_atk = excluded.sp_atk,
		  sp_def = excluded.sp_def,
		  speed = excluded.speed,
		  generation = excluded.generation,
		  legendary = excluded.legendary,
		  height = excluded.height,
		  weight = excluded.weight,
		  base_experience = excluded.base_experience,
		  sprites = excluded.sprites
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for i, p := range records {
		spritesJSON, err := json.Marshal(p.Sprites)
		if err != nil {
			return fmt.Errorf("marshal sprites for %s: %w", p.ID, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			p.ID.String(),
			i,
			p.Name,
			p.Type1,
			p.Type2,
			p.HP,
			p.Attack,
			p.Defense,
			p.SpAtk,
			p.SpDef,
			p.Speed,
			p.Generation.String(),
			p.Legendary,
			p.Height,
			p.Weight,
			p.BaseExperience,
			string(spritesJSON),
		); err != nil {
			return fmt.Errorf("exec upsert for %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CountSaved returns the number of rows in the pokemon table.
func CountSaved(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return n, nil
}
