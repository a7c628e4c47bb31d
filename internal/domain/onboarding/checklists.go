package onboarding

import (
	"fmt"
	"strings"
	"time"
)

func findDocument(docs []DocumentItem, name string) (int, error) {
	for i := range docs {
		if docs[i].Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("document %q: %w", name, ErrNotFound)
}

func recordDocumentUpload(e *Employee, name string, now time.Time, allowReupload bool) (DocumentItem, error) {
	i, err := findDocument(e.Documents, name)
	if err != nil {
		return DocumentItem{}, err
	}
	doc := &e.Documents[i]
	switch {
	case doc.Status == DocumentPending:
	case doc.Status == DocumentRejected && allowReupload:
		doc.VerifiedBy = ""
	default:
		return DocumentItem{}, fmt.Errorf("document %q is %s: %w", name, doc.Status, ErrInvalidState)
	}
	uploaded := now
	doc.Status = DocumentUploaded
	doc.UploadedAt = &uploaded
	return *doc, nil
}

func verifyDocument(e *Employee, name, verifier string) (DocumentItem, error) {
	if strings.TrimSpace(verifier) == "" {
		return DocumentItem{}, fmt.Errorf("verifier is required: %w", ErrInvalidInput)
	}
	i, err := findDocument(e.Documents, name)
	if err != nil {
		return DocumentItem{}, err
	}
	doc := &e.Documents[i]
	if doc.Status != DocumentUploaded {
		return DocumentItem{}, fmt.Errorf("document %q is %s: %w", name, doc.Status, ErrInvalidState)
	}
	doc.Status = DocumentVerified
	doc.VerifiedBy = verifier
	return *doc, nil
}

func rejectDocument(e *Employee, name string) (DocumentItem, error) {
	i, err := findDocument(e.Documents, name)
	if err != nil {
		return DocumentItem{}, err
	}
	doc := &e.Documents[i]
	if doc.Status != DocumentUploaded {
		return DocumentItem{}, fmt.Errorf("document %q is %s: %w", name, doc.Status, ErrInvalidState)
	}
	doc.Status = DocumentRejected
	return *doc, nil
}

// FilterDocuments returns documents in the given status, or all of them when status is empty.
func FilterDocuments(docs []DocumentItem, status DocumentStatus) []DocumentItem {
	out := make([]DocumentItem, 0, len(docs))
	for _, d := range docs {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

func assignEquipment(e *Employee, name, assigner, serial string, now time.Time) (EquipmentItem, error) {
	if strings.TrimSpace(assigner) == "" {
		return EquipmentItem{}, fmt.Errorf("assigner is required: %w", ErrInvalidInput)
	}
	for i := range e.Equipment {
		item := &e.Equipment[i]
		if item.Name != name {
			continue
		}
		if item.Status != EquipmentPending {
			return EquipmentItem{}, fmt.Errorf("equipment %q is %s: %w", name, item.Status, ErrInvalidState)
		}
		assigned := now
		item.Status = EquipmentAssigned
		item.AssignedAt = &assigned
		item.AssignedBy = assigner
		item.SerialNumber = strings.TrimSpace(serial)
		return *item, nil
	}
	return EquipmentItem{}, fmt.Errorf("equipment %q: %w", name, ErrNotFound)
}

func findCompliance(items []ComplianceItem, name string) (int, error) {
	for i := range items {
		if items[i].Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("compliance module %q: %w", name, ErrNotFound)
}

func startCompliance(e *Employee, name string) (ComplianceItem, error) {
	i, err := findCompliance(e.Compliance, name)
	if err != nil {
		return ComplianceItem{}, err
	}
	item := &e.Compliance[i]
	if item.Status != ComplianceNotStarted {
		return ComplianceItem{}, fmt.Errorf("compliance module %q is %s: %w", name, item.Status, ErrInvalidState)
	}
	item.Status = ComplianceInProgress
	return *item, nil
}

func completeCompliance(e *Employee, name string, now time.Time) (ComplianceItem, error) {
	i, err := findCompliance(e.Compliance, name)
	if err != nil {
		return ComplianceItem{}, err
	}
	item := &e.Compliance[i]
	if item.Status != ComplianceInProgress {
		return ComplianceItem{}, fmt.Errorf("compliance module %q is %s: %w", name, item.Status, ErrInvalidState)
	}
	completed := now
	item.Status = ComplianceCompleted
	item.CompletedAt = &completed
	return *item, nil
}
