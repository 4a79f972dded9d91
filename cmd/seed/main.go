// seed puebla el catálogo global de oficios y especialidades. Idempotente:
// los slugs ya existentes se conservan con su id original.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cotizador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cotizador-api/pkg/config"
)

type tradeSeed struct {
	name        string
	slug        string
	specialties []specialtySeed
}

type specialtySeed struct {
	name string
	slug string
}

var catalog = []tradeSeed{
	{
		name: "Carpintería", slug: "carpentry",
		specialties: []specialtySeed{
			{"Escaleras", "stairs"},
			{"Terrazas y decks", "decks"},
			{"Puertas y marcos", "doors"},
			{"Muebles a medida", "custom-furniture"},
			{"Estructuras de madera", "framing"},
		},
	},
	{
		name: "Plomería", slug: "plumbing",
		specialties: []specialtySeed{
			{"Instalaciones sanitarias", "fixtures"},
			{"Redes de agua", "water-lines"},
			{"Desagües", "drains"},
			{"Calentadores", "water-heaters"},
		},
	},
	{
		name: "Electricidad", slug: "electrical",
		specialties: []specialtySeed{
			{"Cableado residencial", "residential-wiring"},
			{"Tableros y acometidas", "panels"},
			{"Iluminación", "lighting"},
		},
	},
	{
		name: "Pintura", slug: "painting",
		specialties: []specialtySeed{
			{"Interiores", "interior"},
			{"Exteriores y fachadas", "exterior"},
			{"Acabados especiales", "finishes"},
		},
	},
	{
		name: "Construcción general", slug: "general-construction",
		specialties: []specialtySeed{
			{"Mampostería", "masonry"},
			{"Enchapes", "tiling"},
			{"Cubiertas", "roofing"},
			{"Remodelaciones", "remodeling"},
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := postgres.UpMigrations(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("catálogo de oficios y especialidades listo")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range catalog {
		var tradeID string
		err := pool.QueryRow(ctx, `
			INSERT INTO trades (id, name, slug)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			uuid.New().String(), t.name, t.slug,
		).Scan(&tradeID)
		if err != nil {
			return fmt.Errorf("upsert trade %s: %w", t.slug, err)
		}

		for _, s := range t.specialties {
			_, err := pool.Exec(ctx, `
				INSERT INTO specialties (id, trade_id, name, slug)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (trade_id, slug) DO UPDATE SET name = EXCLUDED.name`,
				uuid.New().String(), tradeID, s.name, s.slug,
			)
			if err != nil {
				return fmt.Errorf("upsert specialty %s/%s: %w", t.slug, s.slug, err)
			}
		}
	}
	return nil
}
