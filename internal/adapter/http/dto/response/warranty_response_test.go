package response

import (
	"testing"
	"time"

	"repairdesk/internal/domain/entities"
)

func TestFromWarrantyView(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	v := entities.WarrantyView{
		Warranty: entities.Warranty{
			ID:           "w-1",
			DeviceID:     "dev-1",
			RepairItemID: "it-1",
			Code:         "BH-1A2B3C4D",
			StartDate:    start,
			EndDate:      end,
			CreatedAt:    start,
		},
		Status:   entities.WarrantyStatusActive,
		Coverage: entities.CoverageRepairItem,
	}

	res := FromWarrantyView(v)
	if res.ID != "w-1" || res.DeviceID != "dev-1" || res.RepairItemID != "it-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Code != "BH-1A2B3C4D" {
		t.Fatalf("unexpected code: %+v", res)
	}
	if res.Status != "ACTIVE" || res.Coverage != "LINKED_REPAIR_ITEM" {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if !res.StartDate.Equal(start) || !res.EndDate.Equal(end) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromWarrantyViews(t *testing.T) {
	views := []entities.WarrantyView{
		{Warranty: entities.Warranty{ID: "w-1"}, Status: entities.WarrantyStatusActive, Coverage: entities.CoverageDevice},
		{Warranty: entities.Warranty{ID: "w-2"}, Status: entities.WarrantyStatusExpired, Coverage: entities.CoverageRepairItem},
	}

	out := FromWarrantyViews(views)
	if len(out) != 2 {
		t.Fatalf("expected 2, got %d", len(out))
	}
	if out[0].Status != "ACTIVE" || out[1].Status != "EXPIRED" {
		t.Fatalf("unexpected statuses: %+v", out)
	}

	if got := FromWarrantyViews(nil); len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %+v", got)
	}
}
