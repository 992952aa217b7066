// Package store persists per-conversation chat state under a chatflow
// identifier, with protective caps on history length and serialized size.
package store

import (
	"encoding/json"
	"log"
)

// Field names shared with the widget's storage contract.
const (
	fieldChatID  = "chatId"
	fieldHistory = "chatHistory"
	fieldLead    = "lead"
)

const (
	// MaxSerializedBytes is the byte budget for a serialized record. Saves
	// that exceed it are dropped entirely.
	MaxSerializedBytes = 2000
	// MaxHistoryEntries bounds the persisted message history.
	MaxHistoryEntries = 30

	keySuffix = "_EXTERNAL"
)

// strippedFields are heavyweight per-message fields removed before a record
// is measured and persisted.
var strippedFields = map[string]bool{
	"agentReasoning":  true,
	"sourceDocuments": true,
	"artifacts":       true,
}

// Record is the stored conversation object. It is kept as an open map so
// fields this package does not know about survive round-trips.
type Record = map[string]any

// Message is the typed view of one history entry as the widget writes it.
type Message struct {
	Role      string `json:"role,omitempty"`
	Content   string `json:"content,omitempty"`
	Text      string `json:"text,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// StorageKey derives the storage key for a chatflow identifier.
func StorageKey(chatflowID string) string {
	return chatflowID + keySuffix
}

// Store reads and writes conversation records through a KV backend. None of
// its operations raise past their boundary.
type Store struct {
	kv KV
}

// New creates a Store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Save merges chatID into record, trims the history to the last
// MaxHistoryEntries entries with heavyweight fields stripped, and persists
// the result under the chatflow's storage key. Records over the byte budget
// are dropped without touching prior state. If a record already exists, the
// new one is shallow-merged over it; a new history fully replaces the old
// one. A storage failure degrades to writing a minimal record holding only
// the chat identifier.
func (s *Store) Save(chatflowID, chatID string, record Record) {
	rec := make(Record, len(record)+1)
	for k, v := range record {
		rec[k] = v
	}
	rec[fieldChatID] = chatID

	if h, ok := rec[fieldHistory]; ok {
		if trimmed := trimHistory(h); trimmed != nil {
			rec[fieldHistory] = trimmed
		}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("store: marshal record for %s: %v", chatflowID, err)
		return
	}
	if len(data) > MaxSerializedBytes {
		log.Printf("store: record for %s is %d bytes, over the %d byte cap; not saving", chatflowID, len(data), MaxSerializedBytes)
		return
	}

	key := StorageKey(chatflowID)
	payload := data
	if existing, ok, err := s.kv.Get(key); err == nil && ok {
		var old Record
		if json.Unmarshal([]byte(existing), &old) == nil && old != nil {
			for k, v := range rec {
				old[k] = v
			}
			if merged, err := json.Marshal(old); err == nil {
				payload = merged
			}
		}
	}

	if err := s.kv.Set(key, string(payload)); err != nil {
		log.Printf("store: write for %s failed: %v; writing minimal record", chatflowID, err)
		minimal, _ := json.Marshal(Record{fieldChatID: chatID})
		if err := s.kv.Set(key, string(minimal)); err != nil {
			log.Printf("store: minimal write for %s failed: %v", chatflowID, err)
		}
	}
}

// Load returns the stored record for the chatflow, or an empty record when
// nothing is stored or the stored value does not decode.
func (s *Store) Load(chatflowID string) Record {
	val, ok, err := s.kv.Get(StorageKey(chatflowID))
	if err != nil {
		log.Printf("store: read for %s failed: %v", chatflowID, err)
		return Record{}
	}
	if !ok {
		return Record{}
	}
	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		log.Printf("store: decode for %s failed: %v", chatflowID, err)
		return Record{}
	}
	if rec == nil {
		rec = Record{}
	}
	return rec
}

// ClearHistory removes the stored record. Captured lead data survives: when
// present it is rewritten as a record holding only that field. Failures are
// absorbed.
func (s *Store) ClearHistory(chatflowID string) {
	key := StorageKey(chatflowID)
	if val, ok, err := s.kv.Get(key); err == nil && ok {
		var rec Record
		if json.Unmarshal([]byte(val), &rec) == nil {
			if lead, has := rec[fieldLead]; has {
				if data, err := json.Marshal(Record{fieldLead: lead}); err == nil {
					if err := s.kv.Set(key, string(data)); err != nil {
						log.Printf("store: preserving lead for %s failed: %v", chatflowID, err)
					}
					return
				}
			}
		}
	}
	if err := s.kv.Remove(key); err != nil {
		log.Printf("store: clear for %s failed: %v", chatflowID, err)
	}
}

// trimHistory truncates a history value to the newest MaxHistoryEntries
// entries and strips heavyweight fields from each map entry. Returns nil
// when the value is not an array.
func trimHistory(v any) []any {
	var raw []any
	switch h := v.(type) {
	case []any:
		raw = h
	case []Record:
		raw = make([]any, len(h))
		for i, e := range h {
			raw[i] = e
		}
	default:
		return nil
	}

	if len(raw) > MaxHistoryEntries {
		raw = raw[len(raw)-MaxHistoryEntries:]
	}

	out := make([]any, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			out = append(out, e)
			continue
		}
		cp := make(map[string]any, len(m))
		for k, val := range m {
			if strippedFields[k] {
				continue
			}
			cp[k] = val
		}
		out = append(out, cp)
	}
	return out
}
