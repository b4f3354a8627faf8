package repo

import (
	"context"
	"testing"
	"time"

	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/infra/db"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := db.New(&config.Config{Database: config.DBCfg{Driver: db.DriverSQLite, DSN: ":memory:"}})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(d))
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedUser(t *testing.T, d *gorm.DB, username, jobRole string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Role: model.RoleMember, JobRole: jobRole, Locale: "en"}
	require.NoError(t, NewUserRepo(d).Create(context.Background(), u))
	return u
}

func seedProject(t *testing.T, d *gorm.DB, code string, owner *model.User, members ...*model.User) *model.Project {
	t.Helper()
	p := &model.Project{
		Code:      code,
		Name:      "Project " + code,
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-03-01"),
		Budget:    decimal.RequireFromString("10000"),
		Status:    model.ProjectActive,
		OwnerID:   owner.ID,
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	require.NoError(t, NewProjectRepo(d).Create(context.Background(), p, ids))
	return p
}
