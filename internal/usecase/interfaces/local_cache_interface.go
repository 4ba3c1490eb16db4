package interfaces

// ILocalCache is the best-effort offline mirror of remote-sourced collections.
//
// Write never reports failure to callers; a write that cannot be persisted is
// logged and dropped. Read returns false for absent keys and for payloads that
// no longer deserialize, so a corrupted mirror behaves like an empty one.
type ILocalCache interface {
	Write(key string, value any)
	Read(key string, out any) bool
}
