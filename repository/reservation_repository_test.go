package repository

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lounge_booking/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Reservation{}, &model.AppConfig{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func pending(id string, expires int64) *model.Reservation {
	spot, _ := model.ParseSpotID(id)
	return &model.Reservation{
		ID:        id,
		Day:       spot.Day,
		Type:      spot.Type,
		Number:    spot.Number,
		Status:    model.StatusPending,
		Price:     400,
		ExpiresAt: &expires,
		Customer:  datatypes.NewJSONType[*model.Customer](nil),
	}
}

func TestUpsertOverwritesWholeRow(t *testing.T) {
	repo := NewGormReservationRepository(openTestDB(t))
	ctx := context.Background()

	row := pending("friday|bistro|14", 1000)
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("insert: %v", err)
	}

	reserved := &model.Reservation{
		ID: row.ID, Day: row.Day, Type: row.Type, Number: row.Number,
		Status:   model.StatusReserved,
		Price:    450,
		Customer: datatypes.NewJSONType(&model.Customer{FullName: "ZOE"}),
	}
	if err := repo.Upsert(ctx, reserved); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.StatusReserved || got.ExpiresAt != nil || got.Price != 450 || got.CustomerData().FullName != "ZOE" {
		t.Fatalf("unexpected row %+v", got)
	}

	if missing, err := repo.GetByID(ctx, "friday|bistro|13"); err != nil || missing != nil {
		t.Fatalf("expected nil for missing row, got %+v err %v", missing, err)
	}
}

func TestInsertIfAbsentAndReplaceExpired(t *testing.T) {
	repo := NewGormReservationRepository(openTestDB(t))
	ctx := context.Background()

	ok, err := repo.InsertIfAbsent(ctx, pending("saturday|booth|05", 1000))
	if err != nil || !ok {
		t.Fatalf("first insert ok=%v err=%v", ok, err)
	}
	ok, err = repo.InsertIfAbsent(ctx, pending("saturday|booth|05", 5000))
	if err != nil || ok {
		t.Fatalf("second insert should be refused, ok=%v err=%v", ok, err)
	}

	ok, err = repo.ReplaceExpiredPending(ctx, pending("saturday|booth|05", 9000), 500)
	if err != nil || ok {
		t.Fatalf("live hold must not be replaced, ok=%v err=%v", ok, err)
	}
	ok, err = repo.ReplaceExpiredPending(ctx, pending("saturday|booth|05", 9000), 2000)
	if err != nil || !ok {
		t.Fatalf("expired hold should be replaced, ok=%v err=%v", ok, err)
	}
	got, _ := repo.GetByID(ctx, "saturday|booth|05")
	if got.ExpiresAt == nil || *got.ExpiresAt != 9000 {
		t.Fatalf("unexpected expiry %v", got.ExpiresAt)
	}
}

func TestDeleteExpiredPending(t *testing.T) {
	repo := NewGormReservationRepository(openTestDB(t))
	ctx := context.Background()

	_ = repo.Upsert(ctx, pending("friday|booth|01", 1000))
	_ = repo.Upsert(ctx, pending("friday|booth|02", 3000))

	removed, err := repo.DeleteExpiredPending(ctx, 2000)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(removed) != 1 || removed[0].ID != "friday|booth|01" {
		t.Fatalf("unexpected removed rows %+v", removed)
	}
	rows, _ := repo.List(ctx, "friday")
	if len(rows) != 1 || rows[0].ID != "friday|booth|02" {
		t.Fatalf("unexpected remaining rows %+v", rows)
	}

	deleted, err := repo.Delete(ctx, "friday|booth|02")
	if err != nil || !deleted {
		t.Fatalf("delete ok=%v err=%v", deleted, err)
	}
	deleted, _ = repo.Delete(ctx, "friday|booth|02")
	if deleted {
		t.Fatalf("second delete should report nothing removed")
	}
}

func TestDeleteExpiredPendingKeepsRefreshedHold(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	_ = repo.Upsert(ctx, pending("friday|booth|01", 1000))
	_ = repo.Upsert(ctx, pending("friday|booth|02", 1000))

	// a new hold lands on booth 01 between the scan and the delete
	refreshed := false
	err := db.Callback().Delete().Before("gorm:delete").Register("test:refresh_hold", func(tx *gorm.DB) {
		if refreshed {
			return
		}
		refreshed = true
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE reservations SET expires_at = ? WHERE id = ?", 9000, "friday|booth|01")
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	removed, err := repo.DeleteExpiredPending(ctx, 2000)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(removed) != 1 || removed[0].ID != "friday|booth|02" {
		t.Fatalf("unexpected removed rows %+v", removed)
	}
	kept, _ := repo.GetByID(ctx, "friday|booth|01")
	if kept == nil || *kept.ExpiresAt != 9000 {
		t.Fatalf("refreshed hold was deleted: %+v", kept)
	}
}

func TestConfigPut(t *testing.T) {
	repo := NewGormConfigRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Put(ctx, &model.AppConfig{Key: model.ConfigPrices, Value: datatypes.JSON(`{"a":1}`)})
	if err != nil || !created {
		t.Fatalf("first put created=%v err=%v", created, err)
	}
	created, err = repo.Put(ctx, &model.AppConfig{Key: model.ConfigPrices, Value: datatypes.JSON(`{"b":2}`)})
	if err != nil || created {
		t.Fatalf("second put created=%v err=%v", created, err)
	}

	got, err := repo.Get(ctx, model.ConfigPrices)
	if err != nil || got == nil || string(got.Value) != `{"b":2}` {
		t.Fatalf("unexpected blob %+v err %v", got, err)
	}
	if missing, _ := repo.Get(ctx, model.ConfigFlyers); missing != nil {
		t.Fatalf("expected nil for missing key")
	}
	rows, _ := repo.List(ctx)
	if len(rows) != 1 {
		t.Fatalf("expected one config row, got %d", len(rows))
	}
}
