// Package files wraps common filesystem chores.
//
// What:
//
//   - Reading and writing: Read, ReadLocked (shared flock on unix),
//     Write (atomic temp file + rename), Append, Lines.
//   - Inspection: Exists, IsDir, Size, HumanSize, Extension, Name,
//     MimeType (content sniffing, not the extension).
//   - Hashing: Hash with md5/sha1/sha256/sha512/crc32, HashMany in
//     parallel with a bounded worker count.
//   - Tree operations: EnsureDir, Copy, CopyDir, Move, Remove, Symlink,
//     Find (glob, depth and type filters).
//   - Watcher: fsnotify events coalesced per path over a debounce window.
//
// Errors: missing paths wrap ErrNotFound, existing targets ErrExists,
// non-directories ErrNotDir. The underlying *fs.PathError stays in the
// chain, so errors.Is(err, fs.ErrNotExist) keeps working.
package files
