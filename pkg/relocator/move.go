// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relocator

import (
	"bytes"
	"crypto/sha256"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
)

// rename is replaced in tests to simulate cross-device failures.
var rename = os.Rename

// moveFile renames source to target, falling back to copy, verify and
// delete when the two paths are on different filesystems. It reports
// whether the fallback was used.
func moveFile(source, target string) (bool, error) {
	renameErr := rename(source, target)
	if renameErr == nil {
		return false, nil
	}

	var linkErr *os.LinkError
	if !stderrors.As(renameErr, &linkErr) || !stderrors.Is(linkErr.Err, syscall.EXDEV) {
		return false, renameErr
	}

	if err := copyVerified(source, target); err != nil {
		return true, fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(source); err != nil {
		slog.Warn("failed to remove source after copy, duplicate remains",
			"source", source, "target", target, "error", err)
	}
	return true, nil
}

// copyVerified copies source to a new file at target, syncs it and checks
// that the written bytes hash to the same SHA-256 as the source. On any
// failure the partial target is removed.
func copyVerified(source, target string) (err error) {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(target)
		}
	}()

	srcHasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHasher))
	if err != nil {
		return err
	}
	if written != info.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("sync target: %w", err)
	}
	if err = out.Close(); err != nil {
		return err
	}

	dstSum, err := fileSHA256(target)
	if err != nil {
		return fmt.Errorf("hash target: %w", err)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstSum) {
		return fmt.Errorf("copy hash mismatch: %s differs from %s", target, source)
	}

	if err := os.Chtimes(target, info.ModTime(), info.ModTime()); err != nil {
		slog.Debug("failed to preserve modification time", "target", target, "error", err)
	}
	return nil
}

func fileSHA256(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
