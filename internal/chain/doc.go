// Package chain describes a sequence of affine transforms as data.
//
// A chain is written either as op strings on the command line
//
//	translate:5,0  rotate:1.5708  scale:2  matrix:1,0,0,0,1,0
//
// or as a TOML file with one [[step]] table per transform:
//
//	[[step]]
//	op = "rotate"
//	radians = 3.14159
//
//	[[step]]
//	op = "translate"
//	x = 5
//	y = 0
//
// Steps are applied to points in the order they are listed: the first
// step runs first.
package chain
