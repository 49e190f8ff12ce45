package entities

import "strings"

// FieldKey is the canonical name of a stampable field.
type FieldKey string

const (
	FieldGeneratePackageOnBuild          FieldKey = "GeneratePackageOnBuild"
	FieldPackageRequireLicenseAcceptance FieldKey = "PackageRequireLicenseAcceptance"
	FieldGenerateDocumentationFile       FieldKey = "GenerateDocumentationFile"
	FieldPackageID                       FieldKey = "PackageId"
	FieldPackageVersion                  FieldKey = "PackageVersion"
	FieldAuthors                         FieldKey = "Authors"
	FieldCompany                         FieldKey = "Company"
	FieldProduct                         FieldKey = "Product"
	FieldDescription                     FieldKey = "Description"
	FieldCopyright                       FieldKey = "Copyright"
	FieldPackageLicenseURL               FieldKey = "PackageLicenseUrl"
	FieldPackageProjectURL               FieldKey = "PackageProjectUrl"
	FieldPackageIconURL                  FieldKey = "PackageIconUrl"
	FieldRepositoryURL                   FieldKey = "RepositoryUrl"
	FieldRepositoryType                  FieldKey = "RepositoryType"
	FieldPackageTags                     FieldKey = "PackageTags"
	FieldPackageReleaseNotes             FieldKey = "PackageReleaseNotes"
	FieldCulture                         FieldKey = "Culture"
	FieldVersion                         FieldKey = "Version"
	FieldFileVersion                     FieldKey = "FileVersion"
	FieldInformationalVersion            FieldKey = "InformationalVersion"
	FieldTitle                           FieldKey = "Title"
	FieldTrademark                       FieldKey = "Trademark"
	FieldConfiguration                   FieldKey = "Configuration"
)

const (
	PicklistTrue   = "true"
	PicklistFalse  = "false"
	PicklistIgnore = "ignore"
)

// FieldValues carries one raw desired value per supported field.
// An empty value means the field is left untouched.
type FieldValues struct {
	GeneratePackageOnBuild          string `yaml:"generate_package_on_build"`
	PackageRequireLicenseAcceptance string `yaml:"package_require_license_acceptance"`
	GenerateDocumentationFile       string `yaml:"generate_documentation_file"`
	PackageID                       string `yaml:"package_id"`
	PackageVersion                  string `yaml:"package_version"`
	Authors                         string `yaml:"authors"`
	Company                         string `yaml:"company"`
	Product                         string `yaml:"product"`
	Description                     string `yaml:"description"`
	Copyright                       string `yaml:"copyright"`
	PackageLicenseURL               string `yaml:"package_license_url"`
	PackageProjectURL               string `yaml:"package_project_url"`
	PackageIconURL                  string `yaml:"package_icon_url"`
	RepositoryURL                   string `yaml:"repository_url"`
	RepositoryType                  string `yaml:"repository_type"`
	PackageTags                     string `yaml:"package_tags"`
	PackageReleaseNotes             string `yaml:"package_release_notes"`
	Culture                         string `yaml:"culture"`
	VersionNumber                   string `yaml:"version_number"`
	FileVersionNumber               string `yaml:"file_version_number"`
	InformationalVersion            string `yaml:"informational_version"`
	Title                           string `yaml:"title"`
	Trademark                       string `yaml:"trademark"`
	Configuration                   string `yaml:"configuration"`
}

// FieldDefinition describes where a field lives in each file family.
type FieldDefinition struct {
	Key            FieldKey
	Element        string // MSBuild property name, empty when the field is source-only
	Attribute      string // assembly attribute name, empty when the field is project-only
	OutputVariable string // host variable published with the resolved value, if any
	IsVersion      bool
	ExtractNumber  bool // only the dotted number run of the input is used
	IsPicklist     bool
}

// FieldDefinitions returns the ordered field table. Order is the order in which
// directives are applied to every file.
func FieldDefinitions() []FieldDefinition {
	return []FieldDefinition{
		{Key: FieldGeneratePackageOnBuild, Element: "GeneratePackageOnBuild", IsPicklist: true},
		{Key: FieldPackageRequireLicenseAcceptance, Element: "PackageRequireLicenseAcceptance", IsPicklist: true},
		{Key: FieldGenerateDocumentationFile, Element: "GenerateDocumentationFile", IsPicklist: true},
		{Key: FieldPackageID, Element: "PackageId"},
		{
			Key: FieldPackageVersion, Element: "Version", OutputVariable: "AssemblyInfo.PackageVersion",
			IsVersion: true,
		},
		{Key: FieldAuthors, Element: "Authors"},
		{Key: FieldCompany, Element: "Company", Attribute: "AssemblyCompany"},
		{Key: FieldProduct, Element: "Product", Attribute: "AssemblyProduct"},
		{Key: FieldDescription, Element: "Description", Attribute: "AssemblyDescription"},
		{Key: FieldCopyright, Element: "Copyright", Attribute: "AssemblyCopyright"},
		{Key: FieldPackageLicenseURL, Element: "PackageLicenseUrl"},
		{Key: FieldPackageProjectURL, Element: "PackageProjectUrl"},
		{Key: FieldPackageIconURL, Element: "PackageIconUrl"},
		{Key: FieldRepositoryURL, Element: "RepositoryUrl"},
		{Key: FieldRepositoryType, Element: "RepositoryType"},
		{Key: FieldPackageTags, Element: "PackageTags"},
		{Key: FieldPackageReleaseNotes, Element: "PackageReleaseNotes"},
		{Key: FieldCulture, Element: "NeutralLanguage", Attribute: "AssemblyCulture"},
		{
			Key: FieldVersion, Element: "AssemblyVersion", Attribute: "AssemblyVersion",
			OutputVariable: "AssemblyInfo.Version", IsVersion: true, ExtractNumber: true,
		},
		{
			Key: FieldFileVersion, Element: "FileVersion", Attribute: "AssemblyFileVersion",
			OutputVariable: "AssemblyInfo.FileVersion", IsVersion: true, ExtractNumber: true,
		},
		{
			Key: FieldInformationalVersion, Element: "InformationalVersion", Attribute: "AssemblyInformationalVersion",
			OutputVariable: "AssemblyInfo.InformationalVersion", IsVersion: true,
		},
		{Key: FieldTitle, Attribute: "AssemblyTitle"},
		{Key: FieldTrademark, Attribute: "AssemblyTrademark"},
		{Key: FieldConfiguration, Attribute: "AssemblyConfiguration"},
	}
}

// Slot returns a pointer to the value backing the given field.
func (v *FieldValues) Slot(key FieldKey) *string {
	switch key {
	case FieldGeneratePackageOnBuild:
		return &v.GeneratePackageOnBuild
	case FieldPackageRequireLicenseAcceptance:
		return &v.PackageRequireLicenseAcceptance
	case FieldGenerateDocumentationFile:
		return &v.GenerateDocumentationFile
	case FieldPackageID:
		return &v.PackageID
	case FieldPackageVersion:
		return &v.PackageVersion
	case FieldAuthors:
		return &v.Authors
	case FieldCompany:
		return &v.Company
	case FieldProduct:
		return &v.Product
	case FieldDescription:
		return &v.Description
	case FieldCopyright:
		return &v.Copyright
	case FieldPackageLicenseURL:
		return &v.PackageLicenseURL
	case FieldPackageProjectURL:
		return &v.PackageProjectURL
	case FieldPackageIconURL:
		return &v.PackageIconURL
	case FieldRepositoryURL:
		return &v.RepositoryURL
	case FieldRepositoryType:
		return &v.RepositoryType
	case FieldPackageTags:
		return &v.PackageTags
	case FieldPackageReleaseNotes:
		return &v.PackageReleaseNotes
	case FieldCulture:
		return &v.Culture
	case FieldVersion:
		return &v.VersionNumber
	case FieldFileVersion:
		return &v.FileVersionNumber
	case FieldInformationalVersion:
		return &v.InformationalVersion
	case FieldTitle:
		return &v.Title
	case FieldTrademark:
		return &v.Trademark
	case FieldConfiguration:
		return &v.Configuration
	default:
		return nil
	}
}

// FieldDirective is one immutable instruction for the patchers: set Key to Value.
type FieldDirective struct {
	FieldDefinition
	Value           string
	InsertIfMissing bool
}

// IsEmpty reports whether the directive leaves the field untouched.
func (d FieldDirective) IsEmpty() bool {
	return d.Value == ""
}

// NameFor returns the element or attribute name used by the given file kind,
// or an empty string when the field does not exist in that family.
func (d FieldDirective) NameFor(kind FileKind) string {
	switch {
	case kind == FileKindProject:
		return d.Element
	case kind.IsSource():
		return d.Attribute
	default:
		return ""
	}
}

// AppliesTo reports whether the directive carries a value for the given file kind.
func (d FieldDirective) AppliesTo(kind FileKind) bool {
	return !d.IsEmpty() && d.NameFor(kind) != ""
}

// NewFieldDirectives turns already-transformed values into the ordered directive table.
// Picklist fields accept only "true"/"false"; "ignore" leaves them untouched.
func NewFieldDirectives(values FieldValues, insertIfMissing bool) []FieldDirective {
	definitions := FieldDefinitions()
	directives := make([]FieldDirective, 0, len(definitions))

	for _, definition := range definitions {
		value := *values.Slot(definition.Key)
		switch {
		case definition.IsPicklist:
			value = normalizePicklist(value)
		case definition.ExtractNumber:
			value = ExtractVersionNumber(value)
		}

		directives = append(directives, FieldDirective{
			FieldDefinition: definition,
			Value:           value,
			InsertIfMissing: insertIfMissing,
		})
	}

	return directives
}

func normalizePicklist(value string) string {
	switch normalized := strings.ToLower(strings.TrimSpace(value)); normalized {
	case PicklistTrue, PicklistFalse:
		return normalized
	default:
		return ""
	}
}
