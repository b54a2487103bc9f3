package cmd

var NormalizeArgs = normalizeArgs
