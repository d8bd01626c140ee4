package facetfish

import "fmt"

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=facetfish

type Storage interface {
	GetAllShirts() ([]Shirt, error) // 全てのシャツをカタログ順に返す
	AddShirt(Shirt) error           // シャツを挿入する。同じIDのシャツが既にあれば何もしない
	CountShirts() (int, error)      // シャツの件数を返す
}

// LoadSearchEngine reads the whole catalog from storage and builds an engine over it.
func LoadSearchEngine(storage Storage) (*SearchEngine, error) {
	shirts, err := storage.GetAllShirts()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewSearchEngine(shirts), nil
}
