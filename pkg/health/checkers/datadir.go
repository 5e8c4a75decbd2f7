package checkers

import (
	"context"
	"os"
)

// DataDirChecker verifies that the JSON document directory accepts writes.
type DataDirChecker struct {
	dir string
}

func NewDataDirChecker(dir string) *DataDirChecker {
	return &DataDirChecker{dir: dir}
}

func (c *DataDirChecker) Name() string { return "data-dir" }

func (c *DataDirChecker) Check(_ context.Context) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(c.dir, ".ready-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
