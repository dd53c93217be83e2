package repos

import (
	"log"

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
	// Seed reference data if the DB is empty (warehouses/products/inventory)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS Warehouse(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Product(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Supplier(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Inventory(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_id INTEGER NOT NULL REFERENCES Warehouse(id),
  product_id   INTEGER NOT NULL REFERENCES Product(id),
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  status TEXT NOT NULL DEFAULT 'GOOD_CAPACITY'
    CHECK (status IN ('GOOD_CAPACITY','LOW_CAPACITY')),
  UNIQUE(warehouse_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_inventory_warehouse ON Inventory(warehouse_id);
CREATE INDEX IF NOT EXISTS idx_inventory_product   ON Inventory(product_id);

CREATE TABLE IF NOT EXISTS WarehouseCapacity(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  warehouse_id INTEGER NOT NULL REFERENCES Warehouse(id),
  product_id   INTEGER NOT NULL REFERENCES Product(id),
  max_capacity INTEGER NOT NULL CHECK (max_capacity > 0),
  capacity_percentage REAL NOT NULL CHECK (capacity_percentage BETWEEN 0 AND 100),
  UNIQUE(warehouse_id, product_id)
);

CREATE TABLE IF NOT EXISTS PurchaseOrder(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  reference TEXT NOT NULL UNIQUE,
  supplier_id  INTEGER NOT NULL REFERENCES Supplier(id),
  warehouse_id INTEGER NOT NULL REFERENCES Warehouse(id),
  total_amount NUMERIC NOT NULL CHECK (total_amount > 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS ProductReceipt(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  purchase_order_id INTEGER NOT NULL REFERENCES PurchaseOrder(id),
  received_at TEXT DEFAULT CURRENT_TIMESTAMP,
  items TEXT NOT NULL               -- serialized JSON list of line items
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM Warehouse`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo warehouses/products/inventory")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO Warehouse(id, warehouse_name) VALUES
	  (1,'Central Depot'),
	  (2,'Harbor Annex')`)

	tx.MustExec(`INSERT INTO Product(id, product_name) VALUES
	  (1,'Pallet Jack'),
	  (2,'Shrink Wrap Roll'),
	  (3,'Safety Cone')`)

	tx.MustExec(`INSERT INTO Supplier(id, supplier_name) VALUES
	  (1,'Acme Industrial Supply')`)

	tx.MustExec(`INSERT INTO Inventory(warehouse_id, product_id, quantity, status) VALUES
	  (1, 1, 40, 'GOOD_CAPACITY'),
	  (1, 2, 12, 'LOW_CAPACITY'),
	  (2, 1, 5,  'LOW_CAPACITY'),
	  (2, 3, 30, 'GOOD_CAPACITY')`)

	tx.MustExec(`INSERT INTO WarehouseCapacity(warehouse_id, product_id, max_capacity, capacity_percentage) VALUES
	  (1, 1, 50, 50),
	  (1, 2, 60, 30),
	  (2, 1, 40, 25),
	  (2, 3, 40, 50)`)

	tx.MustExec(`INSERT INTO PurchaseOrder(id, reference, supplier_id, warehouse_id, total_amount) VALUES
	  (1, 'c4a7cfbb-50a3-4a34-9d1e-0f0866ba52fb', 1, 1, 1250.00)`)

	tx.MustExec(`INSERT INTO ProductReceipt(id, purchase_order_id, items) VALUES
	  (1, 1, '[{"product_id":1,"product_name":"Pallet Jack","quantity":10,"unit_price":"89.90"},{"product_id":2,"product_name":"Shrink Wrap Roll","quantity":25,"unit_price":"14.04"}]')`)

	return tx.Commit()
}
