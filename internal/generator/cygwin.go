package generator

// Cygwin generates a GNU makefile for Cygwin's gcc.
var Cygwin = register(&Generator{
	Name:         "cygwin",
	Title:        "CygWin",
	Make:         DialectGNU,
	FileName:     "Makefile.CygWin",
	ForwardSlash: true,
	VPath:        VPathGNU,
	LineEnd:      `\`,
	ObjSuffix:    ".o",
	Rules:        cygwinRules(),
	Lines: concat(
		header(DialectGNU, "CygWin", "Makefile.CygWin", opensslRootCygwin),
		[]string{
			"",
			"CC      = gcc",
			"CFLAGS  = " + gccCFlags + " " + commonCFlags,
			"LDFLAGS = " + gccLDFlags,
			"OBJ_DIR = Cygwin_obj",
			"O       = o",
			"",
			"ifeq ($(USE_OPENSSL),1)",
			"  CFLAGS  += " + opensslCygwinCFlags,
			"  EX_LIBS += " + opensslCygwinLibs,
			"endif",
			"",
			"EX_LIBS += " + gccExLibs,
			"",
			"SOURCES = %s",
			"",
			`OBJECTS = $(addprefix $(OBJ_DIR)/, \`,
			"            $(notdir $(SOURCES:.c=.o)))",
			"",
			"GENERATED = config.h",
			"",
			"all: $(GENERATED) $(OBJ_DIR) $(PROGRAM)",
			"\t$(call green_msg, Welcome to $(PROGRAM) (Cygwin).)",
			"",
			"$(OBJ_DIR):",
			"\t- mkdir $(OBJ_DIR)",
			"",
			"$(PROGRAM): $(OBJECTS)",
			"\t$(call green_msg, Linking $@)",
			"\t$(CC) $(LDFLAGS) -o $@ $^ $(EX_LIBS) > $(@:.exe=.map)",
			"\t@echo",
			"",
			"%c",
			"%r",
			"%l",
			"clean:",
			"\trm -f $(OBJECTS)",
			"",
			"vclean realclean: clean",
			"\trm -f $(PROGRAM) .depend.CygWin $(GENERATED)",
			"\t- rmdir $(OBJ_DIR)",
			"",
		},
		gnuConfig(),
		[]string{""},
		depend("CygWin", "$(CC)"),
	),
	RCRule: concat(
		[]string{
			"$(OBJ_DIR)/foo.res: $(OBJ_DIR)/foo.rc",
			"\twindres --target=%T -D__CYGWIN__ -O COFF -o $@ $<",
			"\t@echo",
			"",
			"$(OBJ_DIR)/foo.rc: $(THIS_FILE)",
			"\t$(call green_msg, Generating $@)",
			"\t$(file > $@,$(FOO_RC))",
			"",
		},
		versionResource(),
	),
})

func cygwinRules() Rules {
	r := gccRules()
	r.Res = "$(OBJ_DIR)/%.res: %.rc\n\twindres --target=%T -D__CYGWIN__ -O COFF -o $@ $<\n\t@echo\n"
	r.Lib = "libfoo.a: $(LIB_OBJ)\n\trm -f $@\n\tar rs $@ $^\n\t@echo\n"
	return r
}

// versionResource defines FOO_RC, a VERSIONINFO resource script for GNU
// make's $(file) function.
func versionResource() []string {
	return []string{
		"define FOO_RC",
		"  #include <winver.h>",
		"",
		"  #define RC_VERSION  $(VER_MAJOR),$(VER_MINOR),$(VER_PATCH),0",
		"",
		"  VS_VERSION_INFO VERSIONINFO",
		"    FILEVERSION    RC_VERSION",
		"    PRODUCTVERSION RC_VERSION",
		"    FILEFLAGSMASK  0x3FL",
		"    FILEOS         VOS__WINDOWS32",
		"    FILETYPE       VFT_APP",
		"    FILESUBTYPE    0x0L",
		"    FILEFLAGS      0",
		"",
		"  BEGIN",
		`    BLOCK "StringFileInfo"`,
		"    BEGIN",
		`      BLOCK "040904b0"`,
		"      BEGIN",
		`        VALUE "FileDescription",  "%P"`,
		`        VALUE "FileVersion",      "$(VERSION)"`,
		`        VALUE "ProductVersion",   "$(VERSION)"`,
		`        VALUE "InternalName",     "$(PROGRAM)"`,
		`        VALUE "Comments",         "Built for %b"`,
		"      END",
		"    END",
		`    BLOCK "VarFileInfo"`,
		"    BEGIN",
		`      VALUE "Translation", 0x409, 1200`,
		"    END",
		"  END",
		"endef",
		"",
	}
}
