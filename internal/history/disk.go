package history

import "os"

// DiskUsageBytes sums the sizes of the given files. Paths that do not exist
// contribute zero, since SQLite creates its sidecar files on demand.
func DiskUsageBytes(paths ...string) (int64, error) {
	var total int64
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}

// DatabaseFiles returns the paths SQLite may use for a database at dbPath,
// including the WAL sidecar files it creates alongside.
func DatabaseFiles(dbPath string) []string {
	return []string{dbPath, dbPath + "-wal", dbPath + "-shm"}
}
