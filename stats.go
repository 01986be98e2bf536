package portfolio

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// StorageQuota is the fixed storage allowance usage is reported
	// against: 1 GiB.
	StorageQuota int64 = 1 << 30

	// listPageSize caps each listing call. Folders holding more objects
	// than this silently undercount past the cap.
	listPageSize = 1000
)

// CollectStorageStats walks the bucket's top-level section folders, sums the
// size of every object that reports one, and computes usage against the
// fixed quota. Any listing error aborts the whole aggregation; partial
// results are never returned.
func CollectStorageStats(store ObjectStore) (StorageStats, error) {
	top, err := store.List("", listPageSize)
	if err != nil {
		return StorageStats{}, fmt.Errorf("list bucket: %w", err)
	}

	var totalSize int64
	var fileCount int
	for _, entry := range top {
		if !entry.IsFolder() {
			continue
		}
		objects, err := store.List(entry.Name, listPageSize)
		if err != nil {
			return StorageStats{}, fmt.Errorf("list folder %s: %w", entry.Name, err)
		}
		for _, obj := range objects {
			if !obj.SizeKnown {
				continue
			}
			totalSize += obj.Size
			fileCount++
		}
	}

	remaining := StorageQuota - totalSize
	return StorageStats{
		TotalSize:          totalSize,
		MaxStorage:         StorageQuota,
		UsedPercentage:     math.Round(float64(totalSize)/float64(StorageQuota)*100*10) / 10,
		RemainingBytes:     remaining,
		FileCount:          fileCount,
		FormattedUsed:      FormatBytes(totalSize),
		FormattedMax:       FormatBytes(StorageQuota),
		FormattedRemaining: FormatBytes(remaining),
	}, nil
}

// FormatBytes renders a byte count with the largest power-of-1024 unit not
// exceeding it, rounded to at most two decimals: "0 Bytes", "1 KB",
// "1.5 MB", "1 GB".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
