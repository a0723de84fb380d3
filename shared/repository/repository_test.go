package repository_test

import (
	"context"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/repository"
)

type record struct {
	Number int
	Label  string
}

func newTestRepository() *repository.Repository[record] {
	return repository.NewRepository[record]("record", otelMocks.NewOtel())
}

func byNumber(number int) repository.MatchFunc[record] {
	return func(r record) bool {
		return r.Number == number
	}
}

func mustInsert(t *testing.T, repo *repository.Repository[record], records ...record) {
	t.Helper()
	for _, r := range records {
		if err := repo.Insert(context.Background(), r); err != nil {
			t.Fatalf("failed to insert record: %v", err)
		}
	}
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101, Label: "first"}, record{Number: 102, Label: "second"})

	got, err := repo.Get(context.Background(), byNumber(102))

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Label != "second" {
		t.Errorf("expected label to be 'second', got %s", got.Label)
	}
}

func TestRepository_GetAbsentReturnsZeroValue(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101})

	got, err := repo.Get(context.Background(), byNumber(999))

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Number != 0 {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestRepository_FirstMatchWinsOnDuplicates(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101, Label: "older"}, record{Number: 101, Label: "newer"})

	got, err := repo.Get(context.Background(), byNumber(101))

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Label != "older" {
		t.Errorf("expected label to be 'older', got %s", got.Label)
	}
}

func TestRepository_GetAll(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo,
		record{Number: 103, Label: "a"},
		record{Number: 101, Label: "b"},
		record{Number: 102, Label: "c"},
	)

	t.Run("nil match returns all in insertion order", func(t *testing.T) {
		all, err := repo.GetAll(context.Background(), nil)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 records, got %d", len(all))
		}
		for i, number := range []int{103, 101, 102} {
			if all[i].Number != number {
				t.Errorf("expected record %d to be %d, got %d", i, number, all[i].Number)
			}
		}
	})

	t.Run("match filters records", func(t *testing.T) {
		some, err := repo.GetAll(context.Background(), func(r record) bool { return r.Number > 101 })

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(some) != 2 {
			t.Fatalf("expected 2 records, got %d", len(some))
		}
		if some[0].Number != 103 || some[1].Number != 102 {
			t.Errorf("expected records 103 and 102, got %+v", some)
		}
	})
}

func TestRepository_Exist(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101})

	exist, err := repo.Exist(context.Background(), byNumber(101))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !exist {
		t.Error("expected record 101 to exist")
	}

	exist, err = repo.Exist(context.Background(), byNumber(999))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if exist {
		t.Error("expected record 999 to not exist")
	}

	if _, err = repo.Exist(context.Background(), nil); err == nil {
		t.Error("expected an error for nil match, got nil")
	}
}

func TestRepository_Count(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101}, record{Number: 102}, record{Number: 101})

	total, err := repo.Count(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 3 {
		t.Errorf("expected total to be 3, got %d", total)
	}

	matching, err := repo.Count(context.Background(), byNumber(101))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if matching != 2 {
		t.Errorf("expected 2 matching records, got %d", matching)
	}
}

func TestRepository_Update(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo, record{Number: 101, Label: "older"}, record{Number: 101, Label: "newer"})

	t.Run("only the first match is touched", func(t *testing.T) {
		err := repo.Update(context.Background(), byNumber(101), func(r *record) {
			r.Label = "updated"
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		all, err := repo.GetAll(context.Background(), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if all[0].Label != "updated" || all[1].Label != "newer" {
			t.Errorf("expected labels 'updated' and 'newer', got %+v", all)
		}
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		err := repo.Update(context.Background(), byNumber(999), func(r *record) {
			r.Label = "never"
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		all, err := repo.GetAll(context.Background(), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if all[0].Label != "updated" || all[1].Label != "newer" {
			t.Errorf("expected labels 'updated' and 'newer', got %+v", all)
		}
	})

	t.Run("nil match is rejected", func(t *testing.T) {
		if err := repo.Update(context.Background(), nil, func(r *record) {}); err == nil {
			t.Error("expected an error for nil match, got nil")
		}
	})

	t.Run("nil apply is rejected", func(t *testing.T) {
		if err := repo.Update(context.Background(), byNumber(101), nil); err == nil {
			t.Error("expected an error for nil apply, got nil")
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository()
	mustInsert(t, repo,
		record{Number: 101, Label: "older"},
		record{Number: 102, Label: "keep"},
		record{Number: 101, Label: "newer"},
	)

	t.Run("removes exactly the first match", func(t *testing.T) {
		if err := repo.Delete(context.Background(), byNumber(101)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		all, err := repo.GetAll(context.Background(), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 records, got %d", len(all))
		}
		if all[0].Label != "keep" || all[1].Label != "newer" {
			t.Errorf("expected labels 'keep' and 'newer', got %+v", all)
		}
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		if err := repo.Delete(context.Background(), byNumber(999)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		total, err := repo.Count(context.Background(), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2 records, got %d", total)
		}
	})

	t.Run("nil match is rejected", func(t *testing.T) {
		if err := repo.Delete(context.Background(), nil); err == nil {
			t.Error("expected an error for nil match, got nil")
		}
	})
}
