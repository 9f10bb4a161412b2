/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import "github.com/josephgoksu/jarvis/cmd"

func main() {
	cmd.Execute()
}
