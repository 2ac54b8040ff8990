package helper_test

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/users/user/model"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/testutil"
)

func TestFetchPageWithSearch(t *testing.T) {
	db := testutil.NewDB(t)
	for _, email := range []string{"andi@x.id", "budi@x.id", "andini@x.id", "cici@x.id", "100%@x.id"} {
		testutil.CreateUser(t, db, email, "USER", true)
	}

	p := helper.ParsePagination("1", "2", "AND", "email", "asc", helper.DefaultOpts)
	query := func() *gorm.DB {
		return helper.ApplySearch(db.Model(&model.UserModel{}), p.Search, "name", "email")
	}
	rows, total, err := helper.FetchPage[model.UserModel](context.Background(), query, p, p.OrderClause(map[string]string{"email": "email"}, "created_at DESC"))
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("total=%d rows=%d, want 2/2", total, len(rows))
	}
	if rows[0].Email != "andi@x.id" || rows[1].Email != "andini@x.id" {
		t.Fatalf("unexpected order: %s, %s", rows[0].Email, rows[1].Email)
	}

	// % harus dicari literal, bukan wildcard
	p = helper.ParsePagination("1", "10", "0%", "", "", helper.DefaultOpts)
	rows, total, err = helper.FetchPage[model.UserModel](context.Background(), query, p, "created_at DESC")
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if total != 1 || rows[0].Email != "100%@x.id" {
		t.Fatalf("literal %% search: total=%d", total)
	}
}

func TestFetchPageBeyondLastPage(t *testing.T) {
	db := testutil.NewDB(t)
	for _, email := range []string{"a@x.id", "b@x.id", "c@x.id"} {
		testutil.CreateUser(t, db, email, "USER", true)
	}
	p := helper.ParsePagination("5", "2", "", "", "", helper.DefaultOpts)
	rows, total, err := helper.FetchPage[model.UserModel](context.Background(), func() *gorm.DB {
		return db.Model(&model.UserModel{})
	}, p, "created_at DESC")
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if total != 3 || len(rows) != 0 || rows == nil {
		t.Fatalf("total=%d rows=%v", total, rows)
	}
}
