package ingest

import (
	"encoding/json"
	"fmt"

	"harvesta/entities"
)

// Report is the audit trail of one batch run. Skipped counts decode-time
// rejections, Failed counts persistence errors; the caller decides whether
// a non-zero count fails the job.
type Report struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// TruncatedErrors returns at most max error strings, summarizing the rest.
func (r Report) TruncatedErrors(max int) []string {
	if r.Errors == nil {
		return []string{}
	}
	if len(r.Errors) <= max {
		return r.Errors
	}
	out := make([]string, max, max+1)
	copy(out, r.Errors[:max])
	return append(out, fmt.Sprintf("...and %d more", len(r.Errors)-max))
}

type HarvestWriter interface {
	Create(h *entities.Harvest) error
}

type AttachmentWriter interface {
	Create(a *entities.HarvestAttachment) error
}

type ActivityWriter interface {
	Log(l *entities.ActivityLog)
}

// Runner processes a batch of raw submissions record by record. Records
// are independent: one failure never blocks or rolls back the rest.
type Runner struct {
	harvests    HarvestWriter
	attachments AttachmentWriter
	activity    ActivityWriter
}

func NewRunner(h HarvestWriter, a AttachmentWriter, act ActivityWriter) *Runner {
	return &Runner{harvests: h, attachments: a, activity: act}
}

// RunKobo ingests submissions fetched from the KoboToolbox sync path.
func (r *Runner) RunKobo(subs []KoboSubmission, userID string) Report {
	var rep Report
	for _, sub := range subs {
		h, att, err := DecodeKobo(sub)
		if err != nil {
			rep.Skipped++
			rep.Errors = append(rep.Errors, fmt.Sprintf("submission %d: %v", sub.ID, err))
			continue
		}
		if err := r.harvests.Create(h); err != nil {
			rep.Failed++
			rep.Errors = append(rep.Errors, fmt.Sprintf("submission %d: %v", sub.ID, err))
			continue
		}
		rep.Success++
		if att == nil || r.attachments == nil {
			continue
		}
		a := &entities.HarvestAttachment{
			HarvestID:   h.ID,
			Filename:    att.Filename,
			Mimetype:    att.Mimetype,
			OriginalURL: att.DownloadURL,
			LargeURL:    att.DownloadLargeURL,
			SmallURL:    att.DownloadSmallURL,
			UID:         att.UID,
		}
		if err := r.attachments.Create(a); err != nil {
			// The harvest row is already in; losing the image row is
			// reported but does not undo the record.
			rep.Errors = append(rep.Errors, fmt.Sprintf("submission %d: attachment: %v", sub.ID, err))
		}
	}
	r.logRun("sync_kobo", userID, rep)
	return rep
}

// RunImport ingests records from a JSON file import.
func (r *Runner) RunImport(recs []ImportRecord, userID string) Report {
	var rep Report
	for i, rec := range recs {
		h, err := DecodeImport(rec)
		if err != nil {
			rep.Skipped++
			rep.Errors = append(rep.Errors, fmt.Sprintf("record %d: %v", i+1, err))
			continue
		}
		if err := r.harvests.Create(h); err != nil {
			rep.Failed++
			rep.Errors = append(rep.Errors, fmt.Sprintf("record %d: %v", i+1, err))
			continue
		}
		rep.Success++
	}
	r.logRun("import_file", userID, rep)
	return rep
}

func (r *Runner) logRun(action, userID string, rep Report) {
	if r.activity == nil {
		return
	}
	details, _ := json.Marshal(map[string]int{
		"success": rep.Success,
		"failed":  rep.Failed,
		"skipped": rep.Skipped,
	})
	r.activity.Log(&entities.ActivityLog{
		UserID:       userID,
		Action:       action,
		ResourceType: "harvest",
		Details:      string(details),
	})
}
