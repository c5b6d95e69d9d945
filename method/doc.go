// Package method provides HTTP request methods. Standard methods are exported
// as constants; extension methods are accepted when they are valid RFC 9110
// tokens.
package method
