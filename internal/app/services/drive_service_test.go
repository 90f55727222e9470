package services

import (
	"testing"

	"github.com/adikale/placementhub/internal/app/models/dto"
)

func TestPreviewCriteriaBacklogDefault(t *testing.T) {
	// An omitted ceiling means the form default, not "no backlogs allowed".
	criteria := previewCriteria(&dto.EligibleCountRequest{MinCGPA: 7.0})
	if criteria.MaxBacklogs != previewMaxBacklogs {
		t.Errorf("MaxBacklogs = %d, want %d", criteria.MaxBacklogs, previewMaxBacklogs)
	}
	if criteria.MinCGPA != 7.0 {
		t.Errorf("MinCGPA = %v, want 7.0", criteria.MinCGPA)
	}

	// An explicit zero is honored.
	zero := 0
	criteria = previewCriteria(&dto.EligibleCountRequest{MaxBacklogs: &zero})
	if criteria.MaxBacklogs != 0 {
		t.Errorf("MaxBacklogs = %d, want 0", criteria.MaxBacklogs)
	}
}
