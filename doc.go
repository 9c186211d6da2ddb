/*
Package utfdump answers two questions about textual input: which Unicode
codepoints a byte stream contains, and what the Unicode Character Database
(UCD) says about each of them.

The package is built around an encoded database: UnicodeData.txt is compiled
into a compact binary blob (see Builder and Compile), which a reader then
serves lookups from without further allocation of table state (see
UnicodeData). Large "First..Last" codepoint ranges from the UCD, such as the
CJK ideograph blocks, collapse into single prototype records plus a small
group table, so a lookup costs one binary search over the groups and one
record decode.

Decoding of input bytes lives in the utf8stream subpackage, which implements
the WHATWG Encoding Standard UTF-8 decoder with per-error byte accounting.
Parsing of the UnicodeData.txt source format lives in the ucd subpackage.

Further Reading

	https://www.unicode.org/reports/tr44/   (Unicode Character Database)
	https://encoding.spec.whatwg.org/#utf-8-decoder

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package utfdump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'utfdump'
func tracer() tracing.Trace {
	return tracing.Select("utfdump")
}
