package catalog

import (
	"fmt"

	"github.com/osse101/SlotReveal_Go/internal/utils"
)

// File is the on-disk shape of a catalog config
type File struct {
	Symbols []Symbol `json:"symbols"`
}

// LoadFile reads and validates a catalog from a JSON config file
func LoadFile(path string) (Catalog, error) {
	f, err := utils.ReadJSON[File](path)
	if err != nil {
		return Catalog{}, fmt.Errorf(ErrMsgLoadCatalogFailed, path, err)
	}

	c, err := New(f.Symbols...)
	if err != nil {
		return Catalog{}, fmt.Errorf(ErrMsgLoadCatalogFailed, path, err)
	}
	return c, nil
}
