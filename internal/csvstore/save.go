package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// writeRecords replaces path with the header plus one record per
// entity. The content is written to a temp file alongside the target
// and renamed into place, so readers never see a partial file.
func writeRecords(path string, header []string, records [][]string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
