// Package generator holds the makefile templates for every supported
// toolchain.
//
// A template is a table of lines. Lines may carry one directive, a '%'
// followed by a letter, which the expand package replaces with content
// computed from the classified source tree:
//
//	%s  source file lists        %c  compile rules
//	%o  object file list         %v  directory search path
//	%l  library rule             %r  resource rule
//	%R  resource script macro    %t  CPU bitness (32/64)
//	%b  machine name (x86/x64)   %T  windres target
//	%D  timestamp                %a  formatter found on PATH
//	%P  project name
//
// Only the first '%' of a line is considered. A '%' followed by any other
// character leaves the line untouched, so make pattern rules such as
// "$(OBJ_DIR)/%.o: %.c" pass through as written.
package generator
