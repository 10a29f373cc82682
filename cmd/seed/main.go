// seed aplica el esquema de PostgreSQL y carga el catálogo y los socios
// de ejemplo. Es idempotente: solo inserta los registros que falten.
//
// Uso: go run ./cmd/seed [ruta/esquema.sql]
// Por defecto usa internal/infrastructure/postgres/migrations/001_init.sql.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/biblioteca-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/seed"
	"github.com/jhoicas/biblioteca-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.DB.Enabled() {
		fmt.Fprintln(os.Stderr, "DATABASE_URL (o DB_NAME) no definido; nada que poblar")
		os.Exit(1)
	}

	schemaPath := "internal/infrastructure/postgres/migrations/001_init.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	books := postgres.NewBookRepository(pool)
	members := postgres.NewMemberRepository(pool)
	if err := seed.Run(books, members); err != nil {
		fmt.Fprintf(os.Stderr, "Poblar datos: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Esquema aplicado y datos de ejemplo cargados.")
}
