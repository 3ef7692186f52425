package vault

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	if doc.Entries == nil || len(doc.Entries) != 0 {
		t.Error("fresh document should have an empty entries sequence")
	}
	if _, ok := doc.Metadata["created_at"]; !ok {
		t.Error("fresh document should carry a creation timestamp")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := NewDocument()
	Add(doc, "github", "alice", "s3cr3t")
	Add(doc, "gmail", "alice@example.com", "p@ssw0rd!")

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(got.Entries, doc.Entries) {
		t.Errorf("entries differ after round trip: got %+v, want %+v", got.Entries, doc.Entries)
	}
	if !reflect.DeepEqual(got.Metadata, doc.Metadata) {
		t.Errorf("metadata differs after round trip: got %+v, want %+v", got.Metadata, doc.Metadata)
	}
}

func TestDecodePreservesUnknownMetadata(t *testing.T) {
	data := []byte(`{"metadata":{"created_at":"2025-11-15","custom":"kept"},"entries":[]}`)

	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Metadata["custom"] != "kept" {
		t.Error("unknown metadata keys must be preserved")
	}

	reencoded, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	redecoded, err := Decode(reencoded)
	if err != nil {
		t.Fatalf("second Decode failed: %v", err)
	}
	if redecoded.Metadata["custom"] != "kept" {
		t.Error("metadata must survive a full encode/decode cycle")
	}
}

func TestDecodeMissingEntries(t *testing.T) {
	_, err := Decode([]byte(`{"metadata":{}}`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestDecodeMalformedEntries(t *testing.T) {
	cases := map[string]string{
		"entries is an object": `{"metadata":{},"entries":{"github":{}}}`,
		"entries is a string":  `{"metadata":{},"entries":"nope"}`,
		"entry not a record":   `{"metadata":{},"entries":[42]}`,
		"wrong field type":     `{"metadata":{},"entries":[{"name":1,"username":"u","password":"p"}]}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(payload))
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestDecodeEmptyEntries(t *testing.T) {
	doc, err := Decode([]byte(`{"metadata":{},"entries":[]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Entries == nil || len(doc.Entries) != 0 {
		t.Error("expected empty non-nil entries")
	}
}

func TestEncodeRejectsNilEntries(t *testing.T) {
	doc := &Document{Metadata: map[string]interface{}{}}
	if _, err := Encode(doc); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}
