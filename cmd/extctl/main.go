// Command extctl inspects and edits the extension region of account files.
package main

func main() {
	execute()
}
