// Package file loads whole files into byte buffers and writes buffers back,
// the I/O side of the bufcrypt command-line tools.
//
// # Overview
//
// Store implements both halves of the file collaborator:
//
//   - Read returns the complete contents of a file. ErrNotFound and
//     ErrShortRead distinguish a missing file from one that delivered fewer
//     bytes than its size.
//   - Write persists a buffer through a temporary file and a rename.
//     ErrShortWrite reports an incomplete write.
//
// Callers should depend on the Reader and Writer interfaces.
//
// # Filesystems
//
// Store works on any afero.Fs. NewOSStore uses the host filesystem; tests
// use an in-memory one:
//
//	store := file.NewStore(afero.NewMemMapFs())
//	_ = store.Write("plain.txt", []byte("hello"))
//	data, err := store.Read("plain.txt")
//
// Files are written with mode 0600 unless WithPerm is given, and Read
// refuses files larger than limits.MaxFileSize unless WithMaxSize raises
// the ceiling.
package file
