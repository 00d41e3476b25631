// Package config locates and reads stowd.cfg.
//
// The file is INI with named sections. Three families of sections are read:
//
//	[settings]  [<platform>-settings]  [<hostname>-settings]
//	[home]      [<platform>-home]      [<hostname>-home]
//	[root]      [<platform>-root]      [<hostname>-root]
//
// Merged combines a family in increasing priority (plain, platform, hostname)
// so the most specific section wins for any key defined more than once.
// Keys under home and root sections are app names; their values are the
// boolean tokens understood by package boolean.
//
// An explicit config path ending in .yaml/.yml or .toml is read as YAML or
// TOML with the same section layout.
package config
