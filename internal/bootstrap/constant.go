package bootstrap

const logPrefixBuild = "internal.bootstrap.Build"
