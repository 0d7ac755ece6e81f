package tilespec

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CatalogDB is a SQLite catalog of compiled tile tables, for tools that
// would rather query tile metadata than link it in.
type CatalogDB struct {
	db *sql.DB
}

// CatalogTile is one row of the tile table in the catalog.
type CatalogTile struct {
	Code     byte
	Name     string
	Mod      byte
	Flags    Flags
	Legacy   bool
	Modifier int // modifier width in bytes, 0 for a tile
}

// NewCatalogDB opens, creating if necessary, the catalog in file.
func NewCatalogDB(file string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS tile (code INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL, mod INTEGER NOT NULL, flags INTEGER NOT NULL, legacy INTEGER NOT NULL, modifier INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE INDEX IF NOT EXISTS tile_name ON tile (name)"); err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogDB{
		db: db,
	}, nil
}

// Close closes the catalog.
func (db *CatalogDB) Close() error {
	return db.db.Close()
}

// Import replaces the contents of the catalog with t.
func (db *CatalogDB) Import(t *Table) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM tile"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO tile (code, name, mod, flags, legacy, modifier) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, tile := range t.Tiles {
		if _, err = stmt.Exec(tile.Code, tile.Name, tile.Edition, tile.Flags, tile.Legacy, 0); err != nil {
			return err
		}
	}

	for _, m := range t.Modifiers {
		width, _ := m.ModifierWidth()
		if _, err = stmt.Exec(m.Code, m.Name, m.Edition, 0, m.Legacy, width); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTile(row rowScanner) (*CatalogTile, error) {
	var (
		tile             CatalogTile
		code, mod, flags int64
	)
	if err := row.Scan(&code, &tile.Name, &mod, &flags, &tile.Legacy, &tile.Modifier); err != nil {
		return nil, err
	}
	tile.Code, tile.Mod, tile.Flags = byte(code), byte(mod), Flags(flags)
	return &tile, nil
}

// FindTileByCode returns the catalog row for code, or nil if there is none.
func (db *CatalogDB) FindTileByCode(code byte) (*CatalogTile, error) {
	tile, err := scanTile(db.db.QueryRow("SELECT code, name, mod, flags, legacy, modifier FROM tile WHERE code = ?", code))
	switch err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return tile, nil
	default:
		return nil, err
	}
}

// FindTilesByName returns every catalog row called name, in code order.
func (db *CatalogDB) FindTilesByName(name string) ([]CatalogTile, error) {
	rows, err := db.db.Query("SELECT code, name, mod, flags, legacy, modifier FROM tile WHERE name = ? ORDER BY code", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiles []CatalogTile
	for rows.Next() {
		tile, err := scanTile(rows)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, *tile)
	}
	return tiles, rows.Err()
}
