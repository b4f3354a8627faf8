package service

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"gorm.io/datatypes"
)

func jsonMap(m map[string]string) datatypes.JSONMap {
	if len(m) == 0 {
		return nil
	}
	out := make(datatypes.JSONMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := model.Day(*t)
	return &d
}
