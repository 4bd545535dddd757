package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// WarningList 内容警告标签列表，以 JSON 存储
type WarningList []string

func (w WarningList) Value() (driver.Value, error) {
	if w == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(w)
}

func (w *WarningList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, w)
}
