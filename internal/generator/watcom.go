package generator

// Watcom generates a Wmake makefile for OpenWatcom.
var Watcom = register(&Generator{
	Name:         "watcom",
	Title:        "Watcom",
	Make:         DialectWatcom,
	FileName:     "Makefile.Watcom",
	ForwardSlash: true,
	VPath:        VPathWatcom,
	LineEnd:      "&",
	ObjSuffix:    ".obj",
	Rules: Rules{
		C:   ".ERASE\n.c.obj:\n\t*$(CC) $(CFLAGS) $[@ -fo=$@\n\t@echo\n",
		CC:  ".ERASE\n.cc.obj:\n\t*wpp386 $(CFLAGS) $[@ -fo=$@\n\t@echo\n",
		CPP: ".ERASE\n.cpp.obj:\n\t*wpp386 $(CFLAGS) $[@ -fo=$@\n\t@echo\n",
		CXX: ".ERASE\n.cxx.obj:\n\t*wpp386 $(CFLAGS) $[@ -fo=$@\n\t@echo\n",
		Res: ".ERASE\n.rc.res:\n\twrc -q -r -zm -D__WATCOMC__ -fo=$@ $[@\n\t@echo\n",
		Lib: ".ERASE\nfoo.lib: $(LIB_OBJ) $(THIS_FILE)\n\twlib -q -b -c $^@ $(LIB_OBJ) +-\n\t@echo\n",
	},
	Lines: concat(
		header(DialectWatcom, "Watcom", "$(__MAKEFILES__)", opensslRootNative),
		[]string{
			"",
			"OBJ_DIR = Watcom_obj",
			"",
			"CC      = wcc386",
			"CFLAGS  = -3s -zm -zw -zq -fr=nul -wx -bd -bm -d3 -bt=nt -oilrtfm",
			`CFLAGS += -D_WIN32_WINNT=0x0501 -I. -I$(%WATCOM)\h -I$(%WATCOM)\h\nt #! Add include dirs as needed`,
			"LDFLAGS = system nt",
			"",
			`!if "$(USE_OPENSSL)" == "1"`,
			"CFLAGS  += " + opensslCFlags,
			"EX_LIBS += " + opensslExLibs,
			"!endif",
			"",
			"EX_LIBS += " + exLibs,
			"",
			"SOURCES = %s",
			"",
			"OBJECTS = %o",
			"",
			"GENERATED = config.h",
			"",
			"all: .SYMBOLIC $(GENERATED) $(OBJ_DIR) $(PROGRAM)",
			"\t@echo Welcome to $(PROGRAM) (Watcom).",
			"",
			"$(PROGRAM): $(OBJECTS) #! maybe add a 'foo.res' here?",
			"\twlink $(LDFLAGS) option quiet, caseexact, map name $(PROGRAM) file { $(OBJECTS) } library $(EX_LIBS)",
			"",
			"$(OBJ_DIR):",
			"\t- md $(OBJ_DIR)",
			"",
			"%c",
			"%l",
			"%r",
			"clean: .SYMBOLIC",
			"\trm -f $(OBJECTS) $(PROGRAM:.exe=.map)",
			"\t- rd $(OBJ_DIR)",
			"",
			"vclean realclean: .SYMBOLIC clean",
			"\trm -f $(PROGRAM) $(GENERATED)",
			"",
		},
		plainConfig("Watcom"),
	),
	RCRule: []string{
		".ERASE",
		"$(OBJ_DIR)/foo.res: foo.rc $(THIS_FILE)",
		"\twrc -q -r -zm -D__WATCOMC__ -fo=$@ $[@",
		"\t@echo",
		"",
	},
})
