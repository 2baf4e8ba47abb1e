// Package invocation maps high-level export operations onto the verb and
// positional arguments understood by the export script.
package invocation

import "strings"

// Verb is the first argument of every invocation.
type Verb string

const (
	VerbList   Verb = "list"
	VerbExport Verb = "export"
)

// AccountSeparator joins an account and a folder in a folder specifier.
const AccountSeparator = ":"

// Invocation is the ordered argument list passed to the script after its path.
type Invocation []string

// Verb returns the operation verb, or "" for an empty invocation.
func (i Invocation) Verb() Verb {
	if len(i) == 0 {
		return ""
	}
	return Verb(i[0])
}

// Args returns a copy of the arguments.
func (i Invocation) Args() []string {
	out := make([]string, len(i))
	copy(out, i)
	return out
}

func (i Invocation) String() string {
	return strings.Join(i, " ")
}

// FolderSpecifier builds "account:folder". Neither part is escaped; a ':'
// inside a name is passed through and left to the script to interpret.
func FolderSpecifier(account, folder string) string {
	return account + AccountSeparator + folder
}
