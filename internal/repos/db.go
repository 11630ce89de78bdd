package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string, seedDemo bool) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (names/categories/products)
	if seedDemo {
		if err := seedIfEmpty(db); err != nil {
			return nil, err
		}
	}
	// Ensure login accounts exist (idempotent; safe to run every start)
	if err := seedAccounts(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Name lists (the name is the key)
CREATE TABLE IF NOT EXISTS users(
  name TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS locations(
  name TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS purposes(
  name TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Products. category_id is a weak reference on purpose: deleting a
-- category neither cascades nor is blocked, the id just dangles.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  qrcode TEXT NOT NULL DEFAULT '',
  category_id TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_name   ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_qrcode ON products(qrcode);

-- Registrations: append-only audit log, names denormalized as typed.
CREATE TABLE IF NOT EXISTS registrations(
  id TEXT PRIMARY KEY,
  user TEXT NOT NULL,
  product TEXT NOT NULL,
  location TEXT NOT NULL,
  purpose TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  date TEXT NOT NULL,
  time TEXT NOT NULL,
  qrcode TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_registrations_timestamp ON registrations(timestamp);

-- Login accounts & sessions
CREATE TABLE IF NOT EXISTS accounts(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email ON accounts(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  account_id TEXT NULL REFERENCES accounts(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_account ON sessions(account_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo names/categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO users(name) VALUES
	  ('Jan Janssen'),('Marie Pietersen'),('Piet de Vries')`)
	tx.MustExec(`INSERT INTO locations(name) VALUES
	  ('Kantoor 1.1'),('Vergaderzaal A'),('Warehouse')`)
	tx.MustExec(`INSERT INTO purposes(name) VALUES
	  ('Presentatie'),('Reparatie'),('Training')`)
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('cat-smeer','Smeermiddelen'),
	  ('cat-rein','Reinigers'),
	  ('cat-onderhoud','Onderhoud')`)
	tx.MustExec(`INSERT INTO products(id,name,qrcode,category_id) VALUES
	  ('prod-001','Laptop Dell XPS','DELL-XPS-001',''),
	  ('prod-002','Monitor Samsung 24','SAM-MON-002',''),
	  ('prod-003','Muis Logitech','LOG-MOU-003','cat-onderhoud')`)

	return tx.Commit()
}

// seedAccounts ensures one USER and one ADMIN login exist (idempotent).
func seedAccounts(db *sqlx.DB) error {
	type a struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) a {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return a{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	accounts := []a{
		mk("a-jan", "jan@depotlog.test", "Jan", "USER", "Passw0rd!"),
		mk("a-admin", "admin@depotlog.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range accounts {
		if _, err := tx.Exec(`
			INSERT INTO accounts(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
