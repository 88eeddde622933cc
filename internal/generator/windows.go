package generator

// Windows generates a GNU makefile that builds with either gcc or cl,
// selected with CC= on the make command line.
var Windows = register(&Generator{
	Name:         "windows",
	Title:        "Windows",
	Make:         DialectGNU,
	FileName:     "Makefile.Windows",
	ForwardSlash: true,
	VPath:        VPathGNU,
	LineEnd:      `\`,
	ObjSuffix:    ".$(O)",
	Rules:        windowsRules(),
	GateLibRule:  true,
	Lines: concat(
		header(DialectGNU, "Windows", "Makefile.Windows", opensslRootMinGW),
		[]string{
			"",
			"MINGW_ROOT   = $(realpath $(MINGW32))",
			"VC_ROOT      = $(realpath $(VSINSTALLDIR))",
			"",
			"define USAGE",
			"",
			"  Usage: $(MAKE) -f $(THIS_FILE) CC=[gcc | cl] [all | depend | clean | vclean | install]",
			"endef",
			"",
			"ifeq ($(CC),gcc)",
			"  INSTALL_BIN = $(MINGW_ROOT)/bin",
			"  INSTALL_LIB = $(MINGW_ROOT)/lib",
			"  CFLAGS      = " + gccCFlags,
			"  LDFLAGS     = " + gccLDFlags,
			"  OBJ_DIR     = MinGW_obj",
			"  O           = o",
			"",
			"  ifeq ($(USE_CRT_DEBUG),1)",
			"    CFLAGS  += -O0 -ggdb",
			"  else",
			"    CFLAGS  += -O2 -g",
			"    LDFLAGS += -s",
			"  endif",
			"",
			"  ifeq ($(USE_OPENSSL),1)",
			"    EX_LIBS += " + opensslGCCExLibs,
			"  endif",
			"",
			"  EX_LIBS += " + gccExLibs,
			"",
			"else ifeq ($(CC),cl)",
			"  INSTALL_BIN = $(VC_ROOT)/bin",
			"  INSTALL_LIB = $(VC_ROOT)/lib",
			"  CFLAGS      = " + clCFlags,
			"  LDFLAGS     = " + clLDFlags,
			"  OBJ_DIR     = MSVC_obj",
			"  O           = obj",
			"",
			"  ifeq ($(USE_CRT_DEBUG),1)",
			"    CFLAGS += -MDd -GF -GS -RTCs -RTCu -RTCc",
			"  else",
			"    CFLAGS += -MD",
			"  endif",
			"",
			"  ifeq ($(USE_OPENSSL),1)",
			"    EX_LIBS += " + opensslExLibs,
			"  endif",
			"",
			"  EX_LIBS += " + exLibs,
			"",
			"else",
			"  $(error $(USAGE))",
			"endif",
			"",
			"CFLAGS += " + commonCFlags,
			"",
			"ifeq ($(USE_OPENSSL),1)",
			"  CFLAGS += " + opensslCFlags,
			"endif",
			"",
			"SOURCES = %s",
			"",
			"OBJECTS = $(addprefix $(OBJ_DIR)/, $(notdir $(SOURCES:.c=.$(O))))",
			"",
			"GENERATED = config.h",
			"",
			"all: $(GENERATED) $(OBJ_DIR) $(PROGRAM)",
			"\t@echo 'Welcome to $(PROGRAM) ($$(CC)=$(CC)).'",
			"",
			"$(OBJ_DIR):",
			"\t- mkdir $(OBJ_DIR)",
			"",
			"$(PROGRAM): $(OBJECTS)",
			"\t$(call link_EXE, $@, $^)",
			"",
			"%c",
			"%l",
			"%r",
			"install: $(PROGRAM)",
			"\tcp --update $^ $(INSTALL_BIN)",
			"\t@echo",
			"",
			"clean:",
			"\trm -f $(OBJECTS)",
			"",
			"vclean realclean: clean",
			"\trm -f .depend.Windows $(PROGRAM) $(PROGRAM:.exe=.map) $(PROGRAM:.exe=.pdb) $(GENERATED)",
			"\t- rmdir $(OBJ_DIR)",
			"",
		},
		gnuMacros(),
		gnuConfig(),
		[]string{"%R", ""},
		depend("Windows", "gcc"),
	),
	RCRule: []string{
		"$(OBJ_DIR)/foo.res: $(OBJ_DIR)/foo.rc",
		"\t$(call make_res_$(CC), $<, $@)",
		"",
		"$(OBJ_DIR)/foo.rc: $(THIS_FILE)",
		"\t$(call green_msg, Generating $@)",
		"\t$(file > $@,$(FOO_RC))",
		"",
	},
	RCMacro: versionResource(),
})

func windowsRules() Rules {
	return Rules{
		C: "$(OBJ_DIR)/%.o: %.c\n\t$(CC) $(CFLAGS) -o $@ -c $<\n\t@echo\n\n" +
			"$(OBJ_DIR)/%.obj: %.c\n\t$(CC) $(CFLAGS) -Fo./$@ -c $<\n\t@echo\n",
		CC: "$(OBJ_DIR)/%.o: %.cc\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n\n" +
			"$(OBJ_DIR)/%.obj: %.cc\n\t$(CC) -TP -EHsc $(CFLAGS) -Fo./$@ -c $<\n\t@echo\n",
		CPP: "$(OBJ_DIR)/%.o: %.cpp\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n\n" +
			"$(OBJ_DIR)/%.obj: %.cpp\n\t$(CC) -TP -EHsc $(CFLAGS) -Fo./$@ -c $<\n\t@echo\n",
		CXX: "$(OBJ_DIR)/%.o: %.cxx\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n\n" +
			"$(OBJ_DIR)/%.obj: %.cxx\n\t$(CC) -TP -EHsc $(CFLAGS) -Fo./$@ -c $<\n\t@echo\n",
		Res: "$(OBJ_DIR)/%.res: %.rc\n\t$(call make_res_$(CC), $<, $@)\n",
		Lib: "#\n# Use $(OBJECTS) or $(LIB_OBJ) for $(PROGRAM) or foo.lib/libfoo.a?\n#\n" +
			"libfoo.a foo.lib: $(LIB_OBJ)\n\t$(call make_lib_$(CC), $@, $^)\n",
	}
}

// gnuMacros are the link, library and resource helpers of the dual
// gcc/cl makefile.
func gnuMacros() []string {
	return []string{
		"#",
		"# GNU-make macros:",
		"# (not all may be needed)",
		"#",
		"define link_EXE",
		"  $(call green_msg, Linking $(1))",
		"  $(call link_EXE_$(CC), $(1), $(2))",
		"  @echo",
		"endef",
		"",
		"define link_EXE_cl",
		"  link $(LDFLAGS) -out:$(strip $(1)) $(2) > link.tmp",
		"  @cat link.tmp >> $(1:.exe=.map)",
		"  @rm -f link.tmp",
		"endef",
		"",
		"link_EXE_gcc      = $(CC) $(LDFLAGS) -o $(1) $(2) > $(1:.exe=.map)",
		"link_EXE_clang-cl = $(call link_EXE_cl, $(1), $(2))",
		"",
		"#",
		"# A DLL link macro:",
		"#  arg1, $(1): The DLL-file to create.",
		"#  arg2, $(2): The import library.",
		"#  arg3, $(3): The rest of the arguments.",
		"#",
		"define link_DLL",
		"  $(call green_msg, Linking $(1))",
		"  $(call link_DLL_$(CC), $(1), $(2), $(3))",
		"  @echo",
		"endef",
		"",
		"define link_DLL_cl",
		"  link $(LDFLAGS) -dll -out:$(strip $(1)) -implib:$(strip $(2)) $(3) > link.tmp",
		"  @cat link.tmp >> $(1:.dll=.map)",
		"  @rm -f link.tmp $(2:.lib=.exp)",
		"endef",
		"",
		"link_DLL_gcc      = $(CC) -shared $(LDFLAGS) -o $(1) -Wl,--out-implib,$(strip $(2)) $(3) > $(1:.dll=.map)",
		"link_DLL_clang-cl = $(call link_DLL_cl, $(1), $(2), $(3))",
		"",
		"define make_lib",
		"  $(call green_msg, Creating $(1))",
		"  rm -f $(1)",
		"  $(call make_lib_$(CC), $(1), $(2))",
		"  @echo",
		"endef",
		"",
		"make_lib_gcc = ar rs $(1) $(2)",
		"make_lib_cl  = lib -nologo -machine:%b -out:$(strip $(1)) $(2)",
		"make_lib_clang-cl = $(call make_lib_cl, $(1), $(2))",
		"",
		"define make_res",
		"  $(call green_msg, Creating $(1))",
		"  $(call make_res_$(CC), $(1), $(2))",
		"  @echo",
		"endef",
		"",
		"make_res_gcc      = windres -D__MINGW32__ --target=%T -O COFF -o $(2) $(1)",
		"make_res_cl       = rc -D_MSC_VER -nologo -Fo./$(strip $(2)) $(1)",
		"make_res_clang-cl = rc -D__clang__ -nologo -Fo./$(strip $(2)) $(1)",
		"",
	}
}
