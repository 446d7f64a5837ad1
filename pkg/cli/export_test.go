package cli

var ParseRepoTargets = parseRepoTargets
