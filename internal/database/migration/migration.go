package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_document_categories",
		SQL: `CREATE TABLE IF NOT EXISTS document_categories (
  id        TEXT    PRIMARY KEY,
  title     TEXT    NOT NULL,
  slug      TEXT    NOT NULL UNIQUE,
  ord       INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_active BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id           TEXT          PRIMARY KEY,
  title        TEXT          NOT NULL,
  slug         TEXT          NOT NULL UNIQUE,
  description  TEXT          NOT NULL DEFAULT '',
  category_id  TEXT          REFERENCES document_categories (id) ON DELETE SET NULL,
  storage_key  TEXT          NOT NULL UNIQUE,
  filename     TEXT          NOT NULL,
  size         BIGINT        NOT NULL CHECK (size >= 0),
  content_type TEXT          NOT NULL,
  is_published BOOLEAN       NOT NULL DEFAULT TRUE,
  is_open      BOOLEAN       NOT NULL DEFAULT TRUE,
  access_type  TEXT          NOT NULL DEFAULT 'free',
  price        NUMERIC(12,2),
  currency     TEXT          NOT NULL DEFAULT 'KZT',
  created_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_visibility",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_visibility ON documents (is_published, is_open);`,
	},
	{
		Name: "create_index_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents (created_at);`,
	},
	{
		Name: "create_table_document_purchases",
		SQL: `CREATE TABLE IF NOT EXISTS document_purchases (
  id          TEXT        PRIMARY KEY,
  user_id     TEXT        NOT NULL,
  document_id TEXT        NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  status      TEXT        NOT NULL DEFAULT 'pending',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  paid_at     TIMESTAMPTZ,
  UNIQUE (user_id, document_id)
);`,
	},
	{
		Name: "create_index_document_purchases_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_purchases_status ON document_purchases (status);`,
	},
	{
		Name: "create_table_news_categories",
		SQL: `CREATE TABLE IF NOT EXISTS news_categories (
  id        TEXT    PRIMARY KEY,
  title     TEXT    NOT NULL,
  slug      TEXT    NOT NULL UNIQUE,
  ord       INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_active BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_news_posts",
		SQL: `CREATE TABLE IF NOT EXISTS news_posts (
  id           TEXT        PRIMARY KEY,
  title        TEXT        NOT NULL,
  slug         TEXT        NOT NULL UNIQUE,
  category_id  TEXT        REFERENCES news_categories (id) ON DELETE SET NULL,
  preview_text TEXT        NOT NULL DEFAULT '',
  body         TEXT        NOT NULL,
  is_published BOOLEAN     NOT NULL DEFAULT FALSE,
  published_at TIMESTAMPTZ,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_news_posts_published",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_news_posts_published ON news_posts (is_published, published_at);`,
	},
	{
		Name: "create_table_portfolio_pages",
		SQL: `CREATE TABLE IF NOT EXISTS portfolio_pages (
  id           TEXT    PRIMARY KEY,
  title        TEXT    NOT NULL,
  slug         TEXT    NOT NULL UNIQUE,
  description  TEXT    NOT NULL DEFAULT '',
  ord          INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_published BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_cases",
		SQL: `CREATE TABLE IF NOT EXISTS cases (
  id           TEXT        PRIMARY KEY,
  title        TEXT        NOT NULL,
  slug         TEXT        NOT NULL UNIQUE,
  short_text   TEXT        NOT NULL DEFAULT '',
  body         TEXT        NOT NULL DEFAULT '',
  is_published BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_case_pages",
		SQL: `CREATE TABLE IF NOT EXISTS case_pages (
  case_id TEXT NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  page_id TEXT NOT NULL REFERENCES portfolio_pages (id) ON DELETE CASCADE,
  PRIMARY KEY (case_id, page_id)
);`,
	},
	{
		Name: "create_table_case_images",
		SQL: `CREATE TABLE IF NOT EXISTS case_images (
  id          TEXT    PRIMARY KEY,
  case_id     TEXT    NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  storage_key TEXT    NOT NULL,
  caption     TEXT    NOT NULL DEFAULT '',
  ord         INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_active   BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_case_attachments",
		SQL: `CREATE TABLE IF NOT EXISTS case_attachments (
  id          TEXT    PRIMARY KEY,
  case_id     TEXT    NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  title       TEXT    NOT NULL,
  storage_key TEXT    NOT NULL,
  ord         INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_active   BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_case_documents",
		SQL: `CREATE TABLE IF NOT EXISTS case_documents (
  id             TEXT    PRIMARY KEY,
  case_id        TEXT    NOT NULL REFERENCES cases (id) ON DELETE CASCADE,
  document_id    TEXT    NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  ord            INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  title_override TEXT    NOT NULL DEFAULT '',
  is_active      BOOLEAN NOT NULL DEFAULT TRUE,
  UNIQUE (case_id, document_id)
);`,
	},
	{
		Name: "create_table_contact_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS contact_profiles (
  id         TEXT        PRIMARY KEY,
  title      TEXT        NOT NULL DEFAULT 'Contacts',
  about      TEXT        NOT NULL DEFAULT '',
  is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_contact_items",
		SQL: `CREATE TABLE IF NOT EXISTS contact_items (
  id         TEXT    PRIMARY KEY,
  profile_id TEXT    NOT NULL REFERENCES contact_profiles (id) ON DELETE CASCADE,
  kind       TEXT    NOT NULL,
  label      TEXT    NOT NULL DEFAULT '',
  value      TEXT    NOT NULL,
  link       TEXT    NOT NULL DEFAULT '',
  ord        INTEGER NOT NULL DEFAULT 0 CHECK (ord >= 0),
  is_active  BOOLEAN NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_contact_requests",
		SQL: `CREATE TABLE IF NOT EXISTS contact_requests (
  id           TEXT        PRIMARY KEY,
  full_name    TEXT        NOT NULL DEFAULT '',
  email        TEXT        NOT NULL DEFAULT '',
  phone        TEXT        NOT NULL DEFAULT '',
  message      TEXT        NOT NULL DEFAULT '',
  is_processed BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contact_requests_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_requests_created_at ON contact_requests (created_at);`,
	},
	{
		Name: "create_table_recommendations",
		SQL: `CREATE TABLE IF NOT EXISTS recommendations (
  id          TEXT        PRIMARY KEY,
  title       TEXT        NOT NULL,
  storage_key TEXT        NOT NULL,
  ord         INTEGER     NOT NULL DEFAULT 0 CHECK (ord >= 0),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the 'documents' table exists and runs the
// full schema migration if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
