package farm

import "sync"

// Attachment is a binary payload held in memory for the current session.
type Attachment struct {
	Data     []byte
	MIME     string
	FileName string
}

// AttachmentCache holds record attachments (document files, planting photos)
// keyed by record id. It is deliberately not durable: only attachment
// metadata embedded in the records survives a restart, and download/view
// actions on records whose payload is no longer resident report that to the
// user instead of failing silently.
type AttachmentCache struct {
	mu   sync.Mutex
	byID map[string]Attachment
}

// NewAttachmentCache creates an empty cache.
func NewAttachmentCache() *AttachmentCache {
	return &AttachmentCache{byID: make(map[string]Attachment)}
}

// Put stores the payload for a record, replacing any previous one.
func (c *AttachmentCache) Put(id string, att Attachment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[id] = att
}

// Get returns the payload for a record, if it is resident this session.
func (c *AttachmentCache) Get(id string) (Attachment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	att, ok := c.byID[id]
	return att, ok
}

// Delete drops the payload for a record. Missing ids are a no-op.
func (c *AttachmentCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byID, id)
}
