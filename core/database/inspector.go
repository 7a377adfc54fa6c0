package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field string
	Type  string
	Null  string
	Key   string
	// Default is nil when the column has no default.
	Default *string
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields an empty result on sqlite.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			info := ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Null:    "YES",
				Default: col.DefaultVal,
			}
			if col.Notnull == 1 {
				info.Null = "NO"
			}
			if col.Pk > 0 {
				info.Key = "PRI"
			}
			columns = append(columns, info)
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the names in want that the table does not have.
func MissingColumns(db *gorm.DB, tableName string, want ...string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		have[col.Field] = struct{}{}
	}
	var missing []string
	for _, name := range want {
		if _, ok := have[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
