// Package srt parses and writes SubRip subtitle files.
package srt
