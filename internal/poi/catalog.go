package poi

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Load parses a Solomon-style benchmark table: whitespace-separated rows of
// CUST_NO, XCOORD, YCOORD, DEMAND, READY_TIME, DUE_DATE, SERVICE_TIME.
// Header/name/vehicle lines that do not resolve to seven numeric fields are
// skipped. Row 1 (1-based CUST_NO) becomes id 0, the depot; every other row
// shifts down by one id.
func Load(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("poi: open catalog %q: %w", path, err)
	}
	defer f.Close()

	var rows []rawRow
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		row, ok := parseRow(scanner.Text())
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Catalog{}, fmt.Errorf("poi: read catalog %q: %w", path, err)
	}
	if len(rows) == 0 {
		return Catalog{}, fmt.Errorf("poi: catalog %q has no data rows", path)
	}

	pois := make([]POI, len(rows))
	for i, row := range rows {
		id := i // 1-based CUST_NO remapped to 0-based id, row 0 -> depot
		cat := CategoryDepot
		var price float64
		if id != 0 {
			cat, price = AssignCategoryAndPrice(id)
		}
		pois[i] = POI{
			ID:              id,
			Name:            fmt.Sprintf("POI-%d", id),
			X:               row.x,
			Y:               row.y,
			BaseScore:       row.demand,
			OpenTime:        row.readyTime,
			CloseTime:       row.dueDate,
			ServiceDuration: row.serviceTime,
			Price:           price,
			Category:        cat,
		}
	}
	if pois[0].ID != 0 {
		return Catalog{}, fmt.Errorf("poi: catalog %q: first row must become depot id 0", path)
	}

	return NewCatalog(pois), nil
}

type rawRow struct {
	x, y, demand, readyTime, dueDate, serviceTime float64
}

// parseRow accepts a line of exactly seven whitespace/comma separated
// numeric fields (CUST_NO X Y DEMAND READY_TIME DUE_DATE SERVICE_TIME) and
// discards CUST_NO, since row position (not its value) determines id.
// Any other line — blank, a header, the VEHICLE/CUSTOMER section markers —
// is silently skipped.
func parseRow(line string) (rawRow, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return rawRow{}, false
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '\t' || r == ' '
	})
	if len(fields) != 7 {
		return rawRow{}, false
	}
	values := make([]float64, 7)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return rawRow{}, false
		}
		values[i] = v
	}
	return rawRow{
		x:           values[1],
		y:           values[2],
		demand:      values[3],
		readyTime:   values[4],
		dueDate:     values[5],
		serviceTime: values[6],
	}, true
}

var (
	cacheOnce sync.Once
	cached    Catalog
	cacheErr  error
)

// LoadCached loads the catalog at path exactly once per process and hands
// every subsequent caller its own deep copy of the cached snapshot (spec §5
// "Deep copy on load"). Subsequent calls with a different path are ignored;
// a process serves a single catalog for its lifetime.
func LoadCached(path string) (Catalog, error) {
	cacheOnce.Do(func() {
		cached, cacheErr = Load(path)
	})
	if cacheErr != nil {
		return Catalog{}, cacheErr
	}
	return cached.Clone(), nil
}
