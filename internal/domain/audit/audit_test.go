package audit

import (
	"context"
	"testing"
)

func TestRecordAndList(t *testing.T) {
	svc := New()
	ctx := context.Background()

	_ = svc.Record(ctx, "Admin", "employee.register", "employee", "Alice", "req-1", "127.0.0.1", nil, map[string]string{"name": "Alice"})
	_ = svc.Record(ctx, "Dana", "document.verify", "document", "Alice/Government ID", "req-2", "", map[string]string{"status": "Uploaded"}, map[string]string{"status": "Verified"})
	_ = svc.Record(ctx, "Admin", "task.complete", "task", "Alice/Complete Employee Profile", "req-3", "", nil, nil)

	total, _ := svc.Count(ctx, Filter{})
	if total != 3 {
		t.Fatalf("expected 3 events, got %d", total)
	}
	byActor, _ := svc.Count(ctx, Filter{Actor: "Admin"})
	if byActor != 2 {
		t.Fatalf("expected 2 events by Admin, got %d", byActor)
	}

	events, _ := svc.List(ctx, Filter{}, false, 10, 0)
	if events[0].Action != "task.complete" || events[2].Action != "employee.register" {
		t.Fatal("expected newest first")
	}
	if events[1].After != nil {
		t.Fatal("expected details stripped")
	}

	detailed, _ := svc.List(ctx, Filter{EntityType: "document"}, true, 10, 0)
	if len(detailed) != 1 || string(detailed[0].After) != `{"status":"Verified"}` {
		t.Fatalf("unexpected detailed events: %+v", detailed)
	}

	page, _ := svc.List(ctx, Filter{}, false, 1, 1)
	if len(page) != 1 || page[0].Action != "document.verify" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
