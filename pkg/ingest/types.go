package ingest

import "encoding/json"

// KoboAttachment is one image descriptor inside a raw KoboToolbox submission.
type KoboAttachment struct {
	DownloadURL      string `json:"download_url"`
	DownloadLargeURL string `json:"download_large_url"`
	DownloadSmallURL string `json:"download_small_url"`
	Mimetype         string `json:"mimetype"`
	Filename         string `json:"filename"`
	UID              string `json:"uid"`
}

// KoboSubmission is the raw shape the KoboToolbox data endpoint returns.
// Cutter and box numbers arrive pre-combined in BoxScan ("<cutter>-<box>").
type KoboSubmission struct {
	ID             int64            `json:"_id"`
	Start          string           `json:"start"`
	End            string           `json:"end"`
	Parcel         string           `json:"escanea_la_parcela"`
	BoxScan        string           `json:"escanea_la_caja"`
	BoxWeight      string           `json:"peso_de_la_caja"`
	BoxPhoto       string           `json:"foto_de_la_caja"`
	Location       string           `json:"tu_ubicacion"`
	Attachments    []KoboAttachment `json:"_attachments"`
	Status         string           `json:"_status"`
	SubmissionTime string           `json:"_submission_time"`
	SubmittedBy    string           `json:"_submitted_by"`
}

// ImportRecord is the raw shape of one element in a JSON file import.
// Unlike the sync path, cutter and box numbers come as separate fields and
// the quality label is explicit. Weight accepts both a JSON number and a
// numeric string.
type ImportRecord struct {
	Parcel       string      `json:"escanea_la_parcela"`
	BoxWeightKg  json.Number `json:"peso_de_la_caja"`
	CutterNumber string      `json:"numero_de_cortadora"`
	BoxNumber    string      `json:"numero_de_caja"`
	QualityLabel string      `json:"tipo_de_higo"`
	Start        string      `json:"start"`
}
