// Package graph exposes the blogging API as a GraphQL schema.
package graph

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/maclaude/learning-node-js-graphql-api/internal/apperr"
	"github.com/maclaude/learning-node-js-graphql-api/internal/auth"
	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
	"github.com/maclaude/learning-node-js-graphql-api/internal/repo"
	"github.com/maclaude/learning-node-js-graphql-api/internal/service"
)

// Resolver binds the GraphQL operations to the service layer.
type Resolver struct {
	users    *service.UserService
	posts    *service.PostService
	userRepo repo.UserRepo
	postRepo repo.PostRepo
}

// NewResolver returns a Resolver. The repos back the nested creator and
// user-posts fields.
func NewResolver(users *service.UserService, posts *service.PostService, userRepo repo.UserRepo, postRepo repo.PostRepo) *Resolver {
	return &Resolver{users: users, posts: posts, userRepo: userRepo, postRepo: postRepo}
}

// requireAuth returns the request identity or the uniform "not authenticated"
// failure used by every protected operation.
func requireAuth(ctx context.Context) (auth.Identity, error) {
	ident := auth.FromContext(ctx)
	if !ident.Authenticated {
		return auth.Identity{}, apperr.Unauthorized("Not authenticated!")
	}
	return ident, nil
}

// Schema builds the executable schema.
func (r *Resolver) Schema() (graphql.Schema, error) {
	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).ID.Hex(), nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).Title, nil
				},
			},
			"content": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).Content, nil
				},
			},
			"imageUrl": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).ImageURL, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).CreatedAt.Format(time.RFC3339), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.Post).UpdatedAt.Format(time.RFC3339), nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.User).ID.Hex(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.User).Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(dom.User).Email, nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.postRepo.ListByCreator(p.Context, p.Source.(dom.User).ID)
				},
			},
		},
	})

	postType.AddFieldConfig("creator", &graphql.Field{
		Type: graphql.NewNonNull(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return r.userRepo.GetByID(p.Context, p.Source.(dom.Post).Creator)
		},
	})

	authDataType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthData",
		Fields: graphql.Fields{
			"token":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"userId": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postDataType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PostData",
		Fields: graphql.Fields{
			"posts":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(postType)))},
			"totalPosts": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	userInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserInputData",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	postInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PostInputData",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"imageUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authDataType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"posts": &graphql.Field{
				Type: graphql.NewNonNull(postDataType),
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.listPosts,
			},
			"post": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getPost,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"userInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInputType)},
				},
				Resolve: r.createUser,
			},
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"postInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInputType)},
				},
				Resolve: r.createPost,
			},
			"updatePost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"postInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(postInputType)},
				},
				Resolve: r.updatePost,
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deletePost,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType, Mutation: mutationType})
}
