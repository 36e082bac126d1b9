// Package compression implements the run-length encoding used to store
// animation frames in a microcontroller's flash.
//
// Frames are stored as the byte-wise difference against a shared base frame
// (see package delta). Frames that look like the base differ from it mostly by
// zero bytes, so the difference is dominated by long runs of zero broken up by
// short stretches of unrelated bytes. A plain "count, value" encoding handles
// the runs well but doubles the size of the unrelated stretches, so the format
// has two kinds of records, each introduced by a control byte:
//
//	7 6 5 4 3 2 1 0
//	M n n n n n n n
//
// If the mode bit M is clear, n (1-127) is a repeat count and exactly one byte
// follows, which the decoder writes out n times. If M is set, n (1-127) is a
// literal count and n bytes follow, which the decoder copies out as-is. For
// example:
//
//	00 00 00 01 00      ->  03 00  82 01 00
//	00 00 00 00 00      ->  05 00
//
// There is no header, length prefix, terminator or checksum; a stream ends when
// the input does. Runs longer than 127 bytes are split, so 128 zero bytes take
// two records: `7F 00 01 00`.
//
// The encoder works in two passes. The first groups the input into runs of at
// most 127 identical bytes. The second writes runs of two or more as repeat
// records, and gathers consecutive single bytes into literal records of up to
// 127 bytes. A literal record holding only one byte is the same size as a
// repeat record with a count of 1, so a lone byte is always written as the
// latter.

package compression
