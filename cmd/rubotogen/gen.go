package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruboto/rubotogen/internal/cli"
	"github.com/ruboto/rubotogen/internal/descriptor"
	"github.com/ruboto/rubotogen/internal/generator"
	"github.com/ruboto/rubotogen/internal/models"
)

// Flags shared by gen subclass and gen interface
var (
	genName          string
	genPackage       string
	genTemplate      string
	genMethodBase    string
	genMethodInclude string
	genMethodExclude string
	genImplements    string
	genForce         bool
)

var (
	coreContinueOnError bool

	inheritingName     string
	inheritingPackage  string
	inheritingScript   string
	inheritingFilename string
)

var genCmd = &cobra.Command{
	Use:     "gen",
	Aliases: []string{"generate", "g"},
	Short:   "Generate Java classes",
}

var genSubclassCmd = &cobra.Command{
	Use:   "subclass <class>",
	Short: "Generate a subclass of an Android class",
	Long: `Generate a Java subclass whose overridable methods call Ruby callbacks.

Methods that are added after minSdk or deprecated before targetSdk abort the
generation unless --force is given or they are excluded.`,
	Example: `  # Subclass Activity with every overridable method
  rubotogen gen subclass android.app.Activity --name MyActivity

  # Only the on* callbacks, plus one extra interface
  rubotogen gen subclass android.view.View --name MyView --method-base on \
    --implements android.view.View.OnClickListener`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(models.GenerationParams{Class: args[0]})
	},
}

var genInterfaceCmd = &cobra.Command{
	Use:   "interface <interface>",
	Short: "Generate an implementation of an Android interface",
	Example: `  rubotogen gen interface android.view.View.OnClickListener --name ClickHandler`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(models.GenerationParams{Interface: args[0]})
	},
}

var genCoreCmd = &cobra.Command{
	Use:   "core <all|class>",
	Short: "Generate the Ruboto core classes",
	Long: `Generate the classes the Ruboto runtime ships prebuilt.

"all" builds every core class except the deprecated-prone ones, which must be
named explicitly: ` + strings.Join(generator.CoreClassNames(), ", "),
	Example: `  # Rebuild the runtime classes
  rubotogen gen core all

  # Keep going after a failing class and report every failure at the end
  rubotogen gen core all --continue-on-error

  # Explicit-only class
  rubotogen gen core PreferenceActivity --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		policy := generator.HaltOnError
		if coreContinueOnError {
			policy = generator.CollectErrors
		}

		files, err := session.Generator.GenerateCoreClasses(generator.CoreParams{
			Selection:     args[0],
			MethodBase:    cli.ResolveString(genMethodBase, cfg.Generate.MethodBase),
			MethodInclude: models.SplitNames(genMethodInclude),
			MethodExclude: models.SplitNames(genMethodExclude),
			Implements:    models.SplitNames(genImplements),
			Force:         cli.ResolveBool(genForce, cfg.Generate.Force),
			Destination:   session.Settings.Destination,
			Policy:        policy,
		})
		session.Record(files...)
		if err != nil {
			return err
		}

		session.ReportSuccess()
		return nil
	},
}

var genInheritingCmd = &cobra.Command{
	Use:   "inheriting <Activity|Service|BroadcastReceiver>",
	Short: "Generate a scripted component and its sample script",
	Long: `Generate a Java class extending the matching Ruboto core class that runs
the given script, and append a sample script and test to the project.`,
	Example: `  rubotogen gen inheriting Activity --name MainActivity --script main_activity.rb`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		result, err := session.Generator.GenerateInheritingFile(generator.InheritingParams{
			Klass:       args[0],
			Name:        inheritingName,
			Package:     cli.ResolveString(inheritingPackage, session.Settings.Package),
			ScriptName:  inheritingScript,
			Destination: session.Settings.Destination,
			Filename:    inheritingFilename,
		})
		if err != nil {
			return err
		}

		session.RecordPaths(result.Source, result.Script, result.TestScript)
		session.ReportSuccess()
		return nil
	},
}

// runGenerate resolves the shared gen flags and generates one subclass or interface
func runGenerate(params models.GenerationParams) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	params.Name = genName
	params.Package = cli.ResolveString(genPackage, session.Settings.Package)
	params.Template = genTemplate
	params.MethodBase = cli.ResolveString(genMethodBase, cfg.Generate.MethodBase)
	params.MethodInclude = models.SplitNames(genMethodInclude)
	params.MethodExclude = models.SplitNames(genMethodExclude)
	params.Implements = models.SplitNames(genImplements)
	params.Force = cli.ResolveBool(genForce, cfg.Generate.Force)
	params.Destination = session.Settings.Destination

	file, err := session.Generator.GenerateSubclassOrInterface(params)
	if err != nil {
		return err
	}

	session.Record(file)
	session.ReportSuccess()
	return nil
}

// addMethodFlags registers the method selection flags shared by the generating commands
func addMethodFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&genMethodBase, "method-base", "", fmt.Sprintf("methods to start from: %s (default from config)", strings.Join([]string{descriptor.BaseAll, descriptor.BaseOn, descriptor.BaseAbstract, descriptor.BaseNone}, ", ")))
	f.StringVar(&genMethodInclude, "method-include", "", "comma separated method names to add")
	f.StringVar(&genMethodExclude, "method-exclude", "", "comma separated method names to drop")
	f.StringVar(&genImplements, "implements", "", "comma separated extra interfaces to implement")
	f.BoolVar(&genForce, "force", false, "generate methods and classes that change within the SDK range "+
		"(force: true in rubotogen.yaml cannot be turned off here)")
}

func init() {
	for _, cmd := range []*cobra.Command{genSubclassCmd, genInterfaceCmd} {
		addMethodFlags(cmd)
		f := cmd.Flags()
		f.StringVar(&genName, "name", "", "name of the generated class (required)")
		f.StringVar(&genPackage, "package", "", "package of the generated class (default: from config or manifest)")
		f.StringVar(&genTemplate, "template", "", "template to render (default: "+models.DefaultTemplate+")")
		_ = cmd.MarkFlagRequired("name")
	}

	addMethodFlags(genCoreCmd)
	genCoreCmd.Flags().BoolVar(&coreContinueOnError, "continue-on-error", false, "generate the remaining classes after a failure")

	f := genInheritingCmd.Flags()
	f.StringVar(&inheritingName, "name", "", "name of the generated class (required)")
	f.StringVar(&inheritingPackage, "package", "", "package of the generated class (default: from config or manifest)")
	f.StringVar(&inheritingScript, "script", "", "script the component runs, e.g. main_activity.rb (required)")
	f.StringVar(&inheritingFilename, "filename", "", "base name of the Java file (default: --name)")
	_ = genInheritingCmd.MarkFlagRequired("name")
	_ = genInheritingCmd.MarkFlagRequired("script")

	genCmd.AddCommand(genSubclassCmd)
	genCmd.AddCommand(genInterfaceCmd)
	genCmd.AddCommand(genCoreCmd)
	genCmd.AddCommand(genInheritingCmd)
}
