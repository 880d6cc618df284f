package pageinfo

// CanonicalURL exposes canonicalURL for tests.
var CanonicalURL = canonicalURL

// DecodeSnapshot exposes decodeSnapshot for tests.
var DecodeSnapshot = decodeSnapshot
