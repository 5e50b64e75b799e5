package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
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
	// Seed the sample catalog if the DB is empty (safe to run every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('Infrastructure','Machines','Machinery','Inputs','Transport')),
  price NUMERIC NOT NULL CHECK (price >= 0),
  rent_per_day NUMERIC NOT NULL DEFAULT 0 CHECK (rent_per_day >= 0),
  img TEXT NOT NULL,
  rating NUMERIC NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
  description TEXT NOT NULL,
  tags_json TEXT NOT NULL DEFAULT '[]',
  availability INTEGER NOT NULL DEFAULT 1,
  stock INTEGER NOT NULL DEFAULT 1 CHECK (stock >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_title    ON products(LOWER(title));

-- Cursor positions (ephemeral; expired rows are filtered on read and swept)
CREATE TABLE IF NOT EXISTS cursor_positions(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  x NUMERIC NOT NULL CHECK (x >= 0),
  y NUMERIC NOT NULL CHECK (y >= 0),
  page TEXT NOT NULL,
  timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cursor_user_page ON cursor_positions(user_id, page);
CREATE INDEX IF NOT EXISTS idx_cursor_timestamp ON cursor_positions(timestamp);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting sample co-op catalog")

	// Seed timestamps use the same RFC3339 UTC format the services write.
	now := time.Now().UTC().Format(time.RFC3339)

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,category,price,rent_per_day,img,rating,description,tags_json,availability,stock,created_at,updated_at) VALUES
	  ('p1','Cold Storage Unit - 2 Ton (Shared Hub)','Infrastructure',150000,3000,
	   'https://images.unsplash.com/photo-1600180758891-4ecb9b5b76f1?auto=format&fit=crop&w=400&q=80',4.6,
	   'Modular cold storage for hub use — shared financing option for FPCs',
	   '["cold-storage","hub","infrastructure"]',1,5,?,?),
	  ('p2','Mini Tractor (Utility)','Machines',425000,7000,
	   'https://images.unsplash.com/photo-1599999901420-8ee7ce2b8132?auto=format&fit=crop&w=400&q=80',4.4,
	   'Reliable small tractor suited for small farms and hub logistics',
	   '["tractor","mechanization"]',1,3,?,?),
	  ('p3','Packaging & Grading Line (Basic)','Machinery',65000,1800,
	   'https://images.unsplash.com/photo-1602524818020-7183c4f28f8b?auto=format&fit=crop&w=400&q=80',4.2,
	   'Semi-automated grading and packaging machine for hub processing',
	   '["packaging","quality"]',1,2,?,?),
	  ('p4','Organic Seed Kit — 1 Season (5 varieties)','Inputs',2500,0,
	   'https://images.unsplash.com/photo-1601758173927-3d0b382b7e0b?auto=format&fit=crop&w=400&q=80',4.8,
	   'Certified seed pack for cooperative demonstration plots',
	   '["seeds","organic"]',1,50,?,?),
	  ('p5','Cold-chain Transport (Reefer Van) — Rent','Transport',0,12000,
	   'https://images.unsplash.com/photo-1601626127335-5f83d207bfb2?auto=format&fit=crop&w=400&q=80',4.5,
	   'Short-term reefer van rental to move produce between hubs',
	   '["transport","reefer","logistics"]',1,1,?,?),
	  ('p6','Shared Solar Drying Unit (Hub)','Infrastructure',45000,900,
	   'https://images.unsplash.com/photo-1616186770050-62c1b0c90d32?auto=format&fit=crop&w=400&q=80',4.3,
	   'Solar-driven dryer for value-add products and reduced waste',
	   '["solar","drying"]',1,4,?,?)`,
		now, now, now, now, now, now, now, now, now, now, now, now)

	return tx.Commit()
}
