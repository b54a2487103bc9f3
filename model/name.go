package model

import "strings"

// MaxNameLength is the maximum length in bytes of any component or PE name
const MaxNameLength = 64

// reservedWords are the keywords of Verilog (IEEE 1364-2005).  Keywords are
// case-sensitive so only the lowercase spelling is reserved.
var reservedWords = makeWordSet(`
	always and assign automatic begin buf bufif0 bufif1 case casex casez cell
	cmos config deassign default defparam design disable edge else end endcase
	endconfig endfunction endgenerate endmodule endprimitive endspecify
	endtable endtask event for force forever fork function generate genvar
	highz0 highz1 if ifnone incdir include initial inout input instance
	integer join large liblist library localparam macromodule medium module
	nand negedge nmos nor noshowcancelled not notif0 notif1 or output
	parameter pmos posedge primitive pull0 pull1 pulldown pullup
	pulsestyle_ondetect pulsestyle_onevent rcmos real realtime reg release
	repeat rnmos rpmos rtran rtranif0 rtranif1 scalared showcancelled signed
	small specify specparam strong0 strong1 supply0 supply1 table task time
	tran tranif0 tranif1 tri tri0 tri1 triand trior trireg unsigned use uwire
	vectored wait wand weak0 weak1 while wire wor xnor xor
`)

func makeWordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(words) {
		set[word] = struct{}{}
	}

	return set
}

// IsReservedWord returns whether `name` is a Verilog keyword
func IsReservedWord(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// IsValidIdentifier returns whether or not a given string can be used as a
// name: it must be a non-empty Verilog simple identifier no longer than
// MaxNameLength that is not a keyword.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" || len(idstr) > MaxNameLength || IsReservedWord(idstr) {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
