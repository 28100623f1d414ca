package config

var AppVersion = "DEVELOPMENT"

const (
	AppName = "delimatch"
	CfgFile = "delimatch.toml"
	LogFile = "delimatch.log"
)
