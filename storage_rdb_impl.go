package facetfish

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// CreateTable creates the shirts table if it does not exist.
// seq keeps the insertion order, which is the catalog order.
func (s *StorageRdbImpl) CreateTable() error {
	_, err := s.DB.Exec(`create table if not exists shirts (
		seq bigint unsigned not null auto_increment primary key,
		id char(36) not null unique,
		name varchar(255) not null,
		size_id char(36) not null,
		color_id char(36) not null
	)`)
	return err
}

type shirtRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	SizeID  string `db:"size_id"`
	ColorID string `db:"color_id"`
}

func (r shirtRow) toShirt() (Shirt, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Shirt{}, fmt.Errorf("shirt id %q: %w", r.ID, err)
	}
	sizeID, err := uuid.Parse(r.SizeID)
	if err != nil {
		return Shirt{}, fmt.Errorf("size id %q: %w", r.SizeID, err)
	}
	size, ok := SizeByID(sizeID)
	if !ok {
		return Shirt{}, fmt.Errorf("%w: size %s of shirt %s", ErrUnknownFacetValue, sizeID, id)
	}
	colorID, err := uuid.Parse(r.ColorID)
	if err != nil {
		return Shirt{}, fmt.Errorf("color id %q: %w", r.ColorID, err)
	}
	color, ok := ColorByID(colorID)
	if !ok {
		return Shirt{}, fmt.Errorf("%w: color %s of shirt %s", ErrUnknownFacetValue, colorID, id)
	}
	return NewShirt(id, r.Name, size, color), nil
}

func (s *StorageRdbImpl) CountShirts() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from shirts`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllShirts() ([]Shirt, error) {
	var rows []shirtRow
	if err := s.DB.Select(&rows, `select id, name, size_id, color_id from shirts order by seq`); err != nil {
		return nil, err
	}
	shirts := make([]Shirt, len(rows))
	for i, r := range rows {
		shirt, err := r.toShirt()
		if err != nil {
			return nil, err
		}
		shirts[i] = shirt
	}
	return shirts, nil
}

func (s *StorageRdbImpl) AddShirt(shirt Shirt) error {
	_, err := s.DB.NamedExec(`insert into shirts (id, name, size_id, color_id) values (:id, :name, :size_id, :color_id)`,
		map[string]interface{}{
			"id":       shirt.ID.String(),
			"name":     shirt.Name,
			"size_id":  shirt.Size.ID.String(),
			"color_id": shirt.Color.ID.String(),
		})
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil
		}
		return err
	}
	return nil
}
