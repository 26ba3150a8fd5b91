// Package codec converts transaction records between their on-disk formats.
//
// Three representations of the same canonical record model are supported: a
// compact framed binary format, a tabular CSV format, and a human-readable
// KEY: VALUE text format. Every codec implements the record.Reader and
// record.Writer capabilities, and callers pick a codec pair through Format.
//
// # Binary Format
//
// Records are framed back-to-back with no separator beyond the frame itself:
//
//	[Magic "YPBN"(4)][PayloadLength(4)][Payload]
//
// The payload is big-endian throughout:
//
//	[ID(8)][TypeTag(1)][FromUserID(8)][ToUserID(8)][Amount(8)]
//	[Timestamp(8)][StatusTag(1)][DescriptionLength(4)][Description]
//
// Type tags are 0=Deposit, 1=Transfer, 2=Withdrawal; status tags are
// 0=Success, 1=Failure, 2=Pending. The description is raw UTF-8, not
// null-terminated. A zero-length stream is a valid, empty record set; any
// truncation inside a frame is a read error.
//
// # CSV Format
//
// A fixed header row followed by one row per record:
//
//	TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION
//
// Quoting and escaping are standard CSV rules via encoding/csv.
//
// # Text Format
//
// One block of KEY: VALUE lines per record, blocks separated by a blank line,
// # comments permitted anywhere. Keys are order-independent within a block
// and must not repeat. DESCRIPTION values are wrapped in literal double
// quotes on disk; embedded quote characters are not escaped.
//
// # Error Handling
//
// All codecs return *Error, a single tagged type whose Kind distinguishes
// structural violations, bad field values, missing or duplicated text fields,
// unknown format names, and wrapped I/O failures. Decoding is fail-fast:
// the first malformed record aborts the whole decode with no partial result.
//
// # Thread Safety
//
// Readers and writers hold no state between calls; each call owns its stream
// exclusively for its duration and is safe for concurrent use on distinct
// streams.
package codec
