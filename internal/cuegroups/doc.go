// Package cuegroups arranges built slides into the colored groups shown in
// the presentation's slide list.
package cuegroups
