package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/spotmap/pkg/constants"
)

// Example demonstrates creating output with the shared permissions.
func Example() {
	dir := filepath.Join(os.TempDir(), "spotmap-example")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Catalog\n"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("dir %o, file %o\n", constants.DirPermissions, constants.FilePermissions)
	fmt.Println("highlights shown:", constants.MaxDisplayHighlights)
	// Output:
	// dir 755, file 644
	// highlights shown: 3
}
